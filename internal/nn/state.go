package nn

import "fmt"

// StateDict returns parameter values keyed by parameter name.
func StateDict(m Module) map[string]float64 {
	params := m.Parameters()
	sd := make(map[string]float64, len(params))
	for _, p := range params {
		sd[p.Name()] = p.Data()
	}
	return sd
}

// LoadStateDict sets every parameter of m from sd. Keys in sd that m does
// not have are ignored. If any parameter is missing from sd, m is left
// unchanged.
func LoadStateDict(m Module, sd map[string]float64) error {
	params := m.Parameters()
	for _, p := range params {
		if _, ok := sd[p.Name()]; !ok {
			return fmt.Errorf("load %s: %w", p.Name(), ErrMissingParameter)
		}
	}
	for _, p := range params {
		p.SetData(sd[p.Name()])
	}
	return nil
}
