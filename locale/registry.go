package locale

import (
	"fmt"
	"net/http"
	"sort"
)

// DefaultResolverName selects the JSON file/HTTP resolver.
const DefaultResolverName = "default"

// Registry maps resolver names to implementations. It is built once per run
// and handed to Build.
type Registry struct {
	resolvers map[string]Resolver
}

// NewRegistry returns a registry holding the built-in resolvers: "default",
// "yaml", "blob", and "goi18n" with its "goi18n-json" and "goi18n-yaml"
// variants for the other message file formats. client is used for HTTP
// fetches and may be nil.
func NewRegistry(client *http.Client) *Registry {
	r := &Registry{resolvers: make(map[string]Resolver)}
	r.Register(DefaultResolverName, NewJSONResolver(client))
	r.Register("yaml", NewYAMLResolver(client))
	r.Register("goi18n", NewGoI18nResolver(client, "toml"))
	r.Register("goi18n-json", NewGoI18nResolver(client, "json"))
	r.Register("goi18n-yaml", NewGoI18nResolver(client, "yaml"))
	r.Register("blob", &BlobResolver{})
	return r
}

// Register adds or replaces the resolver for name.
func (r *Registry) Register(name string, res Resolver) {
	r.resolvers[name] = res
}

// Lookup returns the resolver for name. The empty name is the default.
func (r *Registry) Lookup(name string) (Resolver, error) {
	if name == "" {
		name = DefaultResolverName
	}
	res, ok := r.resolvers[name]
	if !ok || res == nil {
		return nil, fmt.Errorf("resolver %q is not registered", name)
	}
	return res, nil
}

// Names returns the registered resolver names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
