package chefapi

// Object is the full JSON document of one server object (node, role,
// environment, or data bag item), kept as raw decoded JSON so a backup
// preserves exactly what the server returned.
type Object map[string]any

// Client is a narrow interface over the Chef server API used by our app.
// Keep it small and focused on what we actually need so it stays mockable.
// List calls return the server's name -> URI index; only names are used.
type Client interface {
	ListNodes() (map[string]string, error)
	GetNode(name string) (Object, error)

	ListRoles() (map[string]string, error)
	GetRole(name string) (Object, error)

	ListEnvironments() (map[string]string, error)
	GetEnvironment(name string) (Object, error)

	ListDataBags() (map[string]string, error)
	ListDataBagItems(bag string) (map[string]string, error)
	GetDataBagItem(bag, item string) (Object, error)
}

type NotFoundError struct{ Resource, Name string }

func (e *NotFoundError) Error() string { return e.Resource + " not found: " + e.Name }
