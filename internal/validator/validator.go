package validator

// Validator collects field errors for a single request.
// Errors maps a field name to the first failure recorded for it.
type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError only keeps the first message for a key
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}
