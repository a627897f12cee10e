// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"strings"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/visitor"
)

// ServerURLHTTPS flags a declared server URL using plain http, except
// for loopback addresses commonly used for local development servers.
func ServerURLHTTPS() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "server-url-https",
		Type:            engine.TypeSuggestion,
		Description:     "server URLs should use https except for loopback addresses",
		DefaultSeverity: diagnostic.SeverityWarning,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Root: func(ev visitor.RootEvent) {
				acc := ctx.Accessor(ev.Node)
				servers, ok := acc.GetArray("servers")
				if !ok {
					return
				}
				for _, server := range servers {
					url, ok := server.GetString("url")
					if !ok || !strings.HasPrefix(url, "http://") || isLoopback(url) {
						continue
					}
					node := server.Node()
					reportKey(ctx, ev.URI, node.Pointer, "url", "server url "+url+" should use https")
				}
			},
		}
	})
}

func isLoopback(url string) bool {
	host := strings.TrimPrefix(url, "http://")
	return strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.0.0.1")
}
