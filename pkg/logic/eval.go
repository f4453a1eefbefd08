package logic

// Eval implements Formula.
func (a Atom) Eval(asg Assignment) (bool, error) {
	v, ok := asg[string(a)]
	if !ok {
		return false, UnboundAtomError{Atom: string(a)}
	}
	return v, nil
}

// Eval implements Formula.
func (n Not) Eval(asg Assignment) (bool, error) {
	v, err := n.F.Eval(asg)
	return !v, err
}

// Eval implements Formula.
func (c And) Eval(asg Assignment) (bool, error) {
	l, err := c.L.Eval(asg)
	if err != nil {
		return false, err
	}
	r, err := c.R.Eval(asg)
	return l && r, err
}

// Eval implements Formula.
func (d Or) Eval(asg Assignment) (bool, error) {
	l, err := d.L.Eval(asg)
	if err != nil {
		return false, err
	}
	r, err := d.R.Eval(asg)
	return l || r, err
}

// Eval implements Formula.
func (i Implies) Eval(asg Assignment) (bool, error) {
	l, err := i.L.Eval(asg)
	if err != nil {
		return false, err
	}
	r, err := i.R.Eval(asg)
	return !l || r, err
}

// Eval implements Formula.
func (i Iff) Eval(asg Assignment) (bool, error) {
	l, err := i.L.Eval(asg)
	if err != nil {
		return false, err
	}
	r, err := i.R.Eval(asg)
	return l == r, err
}
