package fakes

// Confirmer responde siempre lo mismo y cuenta las preguntas.
type Confirmer struct {
	Answer bool
	Err    error
	Asked  []string
}

// Confirm implementa strategies.Confirmer.
func (c *Confirmer) Confirm(question string) (bool, error) {
	c.Asked = append(c.Asked, question)
	return c.Answer, c.Err
}
