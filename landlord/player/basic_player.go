package player

type basicPlayer struct {
	id   int64
	name string
}

func (p basicPlayer) ID() int64 {
	return p.id
}

func (p basicPlayer) Name() string {
	return p.name
}
