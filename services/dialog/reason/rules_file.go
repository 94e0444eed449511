// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reason

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML layout for a custom rule table:
//
//	rules:
//	  romantic:
//	    - give_as_reason: true
//	      satisfied_description: "..."
//	      rules:
//	        - attribute: crowdedness
//	          value: quiet
//	          equal: true
type rulesFile struct {
	Rules map[string][]RuleGroup `yaml:"rules" validate:"required,min=1"`
}

// LoadRules reads a custom inference rule table from a YAML file.
//
// # Inputs
//
//   - path: Path to the rules file.
//
// # Outputs
//
//   - map[string][]RuleGroup: Rule table keyed by consequent name,
//     ready for NewEngine.
//   - error: Non-nil when the file is unreadable, malformed, or a
//     rule group is incomplete. A bad rules file is a configuration
//     error; callers fail fast.
func LoadRules(path string) (map[string][]RuleGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	validate := validator.New()
	for consequent, groups := range file.Rules {
		for i, group := range groups {
			if err := validate.Struct(group); err != nil {
				return nil, fmt.Errorf("rules file %s: consequent %q group %d: %w", path, consequent, i, err)
			}
		}
	}

	return file.Rules, nil
}
