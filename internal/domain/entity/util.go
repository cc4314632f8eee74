package entity

func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
