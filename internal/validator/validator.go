package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/arcanaland/acaan/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	StackPath string
	Results   ValidationResults

	config *deck.StackConfig
}

func NewValidator(stackPath string) *Validator {
	return &Validator{
		StackPath: stackPath,
		Results:   ValidationResults{},
	}
}

// Validate checks a stack file. Only an unreadable file is returned as an
// error; everything else is collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateStackFile(); err != nil {
		return v.Results, err
	}

	v.validateMetadata()
	v.validateCards()

	return v.Results, nil
}

func (v *Validator) validateStackFile() error {
	if _, err := os.Stat(v.StackPath); os.IsNotExist(err) {
		return fmt.Errorf("stack file not found: %s", v.StackPath)
	}

	if !deck.IsStackFile(v.StackPath) {
		return fmt.Errorf("unsupported stack file: %s (expected .toml, .yaml or .yml)", v.StackPath)
	}

	config, err := deck.DecodeFile(v.StackPath)
	if err != nil {
		return err
	}
	v.config = config
	return nil
}

func (v *Validator) validateMetadata() {
	stack := v.config.Stack

	if stack.Name == "" {
		v.Results.Errors = append(v.Results.Errors, "stack.name is required")
	} else if strings.ContainsAny(stack.Name, " \t/") {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("stack.name %q must not contain spaces or slashes", stack.Name))
	}

	if stack.Description == "" {
		v.Results.Warnings = append(v.Results.Warnings, "stack.description is empty")
	}

	if stack.Author == "" {
		v.Results.Warnings = append(v.Results.Warnings, "stack.author is empty")
	}
}

// validateCards checks that every card appears exactly once
func (v *Validator) validateCards() {
	codes := v.config.Stack.Cards

	if len(codes) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("stack has %d cards, expected %d", len(codes), deck.Size))
	}

	seen := make(map[card.Card]int)
	invalid := []string{}
	duplicates := []string{}

	for i, code := range codes {
		c, err := card.Parse(code)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("%q at position %d", code, i+1))
			continue
		}
		if first, ok := seen[c]; ok {
			duplicates = append(duplicates, fmt.Sprintf("%s at positions %d and %d", c, first, i+1))
			continue
		}
		seen[c] = i + 1
	}

	if len(invalid) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("invalid card codes: %s", strings.Join(invalid, ", ")))
	}

	if len(duplicates) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("duplicate cards: %s", strings.Join(duplicates, ", ")))
	}

	missing := []string{}
	for _, c := range card.All() {
		if _, ok := seen[c]; !ok {
			missing = append(missing, string(c))
		}
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing cards: %s", strings.Join(missing, ", ")))
	}
}
