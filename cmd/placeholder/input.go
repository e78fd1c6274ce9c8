package main

import (
	"fmt"
	"io"
	"os"

	"placeholder-expander/internal/common"
	"placeholder-expander/internal/document"
	"placeholder-expander/provider"
)

// readTemplate reads the template named by the first argument, or stdin
// when there is none or it is "-".
func (a *app) readTemplate(args []string) (string, error) {
	name, ok := common.First(args)
	if !ok || name == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	return string(data), nil
}

// loadRoot loads a document and picks the provider that templates are
// expanded against.
func loadRoot(dataPath, rootID string) (*document.Set, provider.Provider, error) {
	set, err := document.LoadFile(dataPath)
	if err != nil {
		return nil, nil, err
	}

	if rootID != "" {
		p, ok := set.Get(rootID)
		if !ok {
			return nil, nil, fmt.Errorf("root %q: no such object in %s", rootID, dataPath)
		}

		return set, p, nil
	}

	p, err := set.Root()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", dataPath, err)
	}

	return set, p, nil
}
