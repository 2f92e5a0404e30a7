package game

// Pacer spaces out the phases of a round for whoever is watching.
type Pacer interface {
	Beat()
	Short()
	Long()
}

type noPacer struct{}

func (noPacer) Beat()  {}
func (noPacer) Short() {}
func (noPacer) Long()  {}
