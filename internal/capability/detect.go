package capability

// Detect returns the sorted names of every registered capability whose
// contract the value satisfies. A variant's capability set is whatever it
// genuinely implements; there is no way to declare an operation it cannot
// honor.
func (r *Registry) Detect(variant any) []string {
	if variant == nil {
		return nil
	}

	var detected []string
	for _, name := range r.List() {
		if r.Conforms(name, variant) == nil {
			detected = append(detected, name)
		}
	}
	return detected
}
