package classifier

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is the on-disk form of the classifier configuration.
//
//	urgent_apps:
//	  - calendar
//	  - pagerduty
type Rules struct {
	UrgentApps []string `yaml:"urgent_apps"`
}

// LoadRules decodes a YAML rules document.
func LoadRules(r io.Reader) (Rules, error) {
	var rules Rules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, errors.Join(ErrInvalidRules, errors.New("empty rules document"))
		}
		return Rules{}, errors.Join(ErrInvalidRules, err)
	}
	if len(normalize(rules.UrgentApps)) == 0 {
		return Rules{}, errors.Join(ErrInvalidRules, ErrNoUrgentApps)
	}
	return rules, nil
}

// LoadRulesFile reads rules from the file at path.
func LoadRulesFile(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, errors.Join(ErrRulesFile, err)
	}
	defer f.Close()

	return LoadRules(f)
}

// Options converts the rules into classifier options.
func (r Rules) Options() []Option {
	if len(r.UrgentApps) == 0 {
		return nil
	}
	return []Option{WithUrgentApps(r.UrgentApps...)}
}
