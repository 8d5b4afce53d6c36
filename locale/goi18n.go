package locale

import (
	"net/http"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"
)

// NewGoI18nResolver returns a resolver for go-i18n message files named
// "<locale>.<format>", where format is toml, json or yaml. Each message ID
// becomes a top-level key, so dotted IDs match exactly.
func NewGoI18nResolver(client *http.Client, format string) *FileHTTPResolver {
	if format == "" {
		format = "toml"
	}
	return &FileHTTPResolver{Client: client, Ext: "." + format, Decode: DecodeMessageFile}
}

var messageUnmarshalers = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// DecodeMessageFile parses a go-i18n message file. The language tag and
// format are taken from the base name of addr.
func DecodeMessageFile(addr string, data []byte) (any, error) {
	name := path.Base(addr)
	if !IsURI(addr) {
		name = filepath.Base(addr)
	}
	mf, err := i18n.ParseMessageFileBytes(data, name, messageUnmarshalers)
	if err != nil {
		return nil, err
	}
	content := make(map[string]any, len(mf.Messages))
	for _, m := range mf.Messages {
		content[m.ID] = m.Other
	}
	return content, nil
}
