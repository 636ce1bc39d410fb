package service

type Config struct {
	SqliteFile string `toml:"sqlite_file"`
	// Namespace keys the persisted session record.
	Namespace  string `toml:"namespace"`
	Token      string `toml:"token"`
	Expiration string `toml:"expiration"`
	Rules      []Rule `toml:"rules"`
}

// Rule grants roles access to routes matching a path pattern. Allow may
// contain "*" for everyone including guests.
type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}

const defaultNamespace = "esportconnect_user"

// SessionNamespace is the key under which the session record is stored.
func (c Config) SessionNamespace() string {
	if c.Namespace == "" {
		return defaultNamespace
	}
	return c.Namespace
}
