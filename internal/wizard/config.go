package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StepsFile is the YAML shape for overriding workshop step configuration.
// Only the listed steps are touched; everything else keeps its default. The
// step order itself is fixed and cannot be changed from configuration.
type StepsFile struct {
	Steps []StepOverride `yaml:"steps"`
}

// StepOverride adjusts one step's presentation and skip policy.
type StepOverride struct {
	ID         string              `yaml:"id"`
	Title      string              `yaml:"title,omitempty"`
	Skip       string              `yaml:"skip,omitempty"`
	Guidance   *GuidanceOverride   `yaml:"guidance,omitempty"`
	Reflection *ReflectionOverride `yaml:"reflection,omitempty"`
}

type GuidanceOverride struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	HowTo       string `yaml:"how_to,omitempty"`
	Example     string `yaml:"example,omitempty"`
}

type ReflectionOverride struct {
	Title   string   `yaml:"title"`
	Mode    string   `yaml:"mode,omitempty"`
	Prompts []string `yaml:"prompts"`
}

var validSkipPolicies = map[SkipPolicy]bool{
	SkipNever: true, SkipAlways: true, SkipAfterFirstVisit: true,
}

var validReflectionModes = map[ReflectionMode]bool{
	ReflectSolo: true, ReflectPair: true, ReflectTrio: true,
}

// LoadSteps returns the default steps with the overrides from path applied.
// An empty path returns the defaults unchanged.
func LoadSteps(path string) ([]Step, error) {
	steps := DefaultSteps()
	if path == "" {
		return steps, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading steps file: %w", err)
	}

	var file StepsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing steps file: %w", err)
	}

	if err := ApplyOverrides(steps, file.Steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// ApplyOverrides merges the given overrides into steps in place.
func ApplyOverrides(steps []Step, overrides []StepOverride) error {
	byID := make(map[StepID]*Step, len(steps))
	for i := range steps {
		byID[steps[i].ID] = &steps[i]
	}

	for _, ov := range overrides {
		st, ok := byID[StepID(ov.ID)]
		if !ok {
			return fmt.Errorf("unknown step id %q", ov.ID)
		}

		if ov.Title != "" {
			st.Title = ov.Title
		}

		if ov.Skip != "" {
			policy := SkipPolicy(ov.Skip)
			if !validSkipPolicies[policy] {
				return fmt.Errorf("step %q: invalid skip policy %q", ov.ID, ov.Skip)
			}
			if !st.Transition {
				return fmt.Errorf("step %q: skip policy only applies to transition steps", ov.ID)
			}
			st.Skip = policy
		}

		if ov.Guidance != nil {
			if st.Guidance == nil {
				st.Guidance = &Guidance{}
			}
			applyGuidance(st.Guidance, ov.Guidance)
		}

		if ov.Reflection != nil {
			mode := ReflectionMode(ov.Reflection.Mode)
			if ov.Reflection.Mode == "" {
				mode = ReflectSolo
			} else if !validReflectionModes[mode] {
				return fmt.Errorf("step %q: invalid reflection mode %q", ov.ID, ov.Reflection.Mode)
			}
			if ov.Reflection.Title == "" || len(ov.Reflection.Prompts) == 0 {
				return fmt.Errorf("step %q: reflection needs a title and at least one prompt", ov.ID)
			}
			st.Reflection = &Reflection{
				Title:   ov.Reflection.Title,
				Mode:    mode,
				Prompts: ov.Reflection.Prompts,
			}
		}
	}
	return nil
}

func applyGuidance(dst *Guidance, ov *GuidanceOverride) {
	if ov.Title != "" {
		dst.Title = ov.Title
	}
	if ov.Description != "" {
		dst.Description = ov.Description
	}
	if ov.HowTo != "" {
		dst.HowTo = ov.HowTo
	}
	if ov.Example != "" {
		dst.Example = ov.Example
	}
}
