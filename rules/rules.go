// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import "github.com/oaslint/oaslint/engine"

// All returns the bundled rule set in registration order. Callers that
// want a subset (config-driven enable/disable) filter the result by
// Meta.ID rather than calling the constructors individually.
func All() []engine.Rule {
	return []engine.Rule{
		PathNoTrailingSlash(),
		ComponentSchemaNameCapital(),
		OperationDescriptionRequired(),
		UnresolvedRef(),
		RefCycle(),
		ServerURLHTTPS(),
		OperationPagination(),
	}
}
