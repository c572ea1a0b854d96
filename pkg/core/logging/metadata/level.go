/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"strings"

	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/api"
)

// ModuleLevels holds the configured level of each module. Modules are
// slash separated paths; a module without a level of its own inherits
// the level of its closest configured parent, so setting "hiero" covers
// "hiero/client" and "hiero/network". The empty module is the root.
type ModuleLevels struct {
	levels map[string]api.Level
}

// GetLevel returns the effective level of module. It is INFO when
// neither the module, a parent nor the root is configured.
func (l *ModuleLevels) GetLevel(module string) api.Level {
	for m := module; ; {
		if level, ok := l.levels[m]; ok {
			return level
		}
		if m == "" {
			return api.INFO
		}
		i := strings.LastIndexByte(m, '/')
		if i < 0 {
			m = ""
		} else {
			m = m[:i]
		}
	}
}

// SetLevel sets the level of module and, unless they have their own,
// of its children
func (l *ModuleLevels) SetLevel(module string, level api.Level) {
	if l.levels == nil {
		l.levels = make(map[string]api.Level)
	}
	l.levels[module] = level
}

// IsEnabledFor reports whether entries at level are written for module
func (l *ModuleLevels) IsEnabledFor(module string, level api.Level) bool {
	return level <= l.GetLevel(module)
}
