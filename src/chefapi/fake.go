package chefapi

// FakeClient is an in-memory implementation for unit tests.
type FakeClient struct {
	Nodes        map[string]Object
	Roles        map[string]Object
	Environments map[string]Object
	// DataBags maps bag name -> item name -> item document.
	DataBags map[string]map[string]Object
}

func NewFake() *FakeClient {
	return &FakeClient{
		Nodes:        map[string]Object{},
		Roles:        map[string]Object{},
		Environments: map[string]Object{},
		DataBags:     map[string]map[string]Object{},
	}
}

// AddNode registers a node document, filling in the name field the way the
// server would.
func (f *FakeClient) AddNode(name string, doc Object) {
	f.Nodes[name] = named(name, doc)
}

func (f *FakeClient) AddRole(name string, doc Object) {
	f.Roles[name] = named(name, doc)
}

func (f *FakeClient) AddEnvironment(name string, doc Object) {
	f.Environments[name] = named(name, doc)
}

// AddDataBagItem registers one item, creating the bag as needed. The raw
// item document carries only its id, as on a real server.
func (f *FakeClient) AddDataBagItem(bag, item string, doc Object) {
	if f.DataBags[bag] == nil {
		f.DataBags[bag] = map[string]Object{}
	}
	if doc == nil {
		doc = Object{}
	}
	doc["id"] = item
	f.DataBags[bag][item] = doc
}

func (f *FakeClient) ListNodes() (map[string]string, error) { return index("nodes", f.Nodes), nil }
func (f *FakeClient) ListRoles() (map[string]string, error) { return index("roles", f.Roles), nil }
func (f *FakeClient) ListEnvironments() (map[string]string, error) {
	return index("environments", f.Environments), nil
}

func (f *FakeClient) ListDataBags() (map[string]string, error) {
	out := map[string]string{}
	for bag := range f.DataBags {
		out[bag] = "https://chef.example.com/data/" + bag
	}
	return out, nil
}

func (f *FakeClient) ListDataBagItems(bag string) (map[string]string, error) {
	items, ok := f.DataBags[bag]
	if !ok {
		return nil, &NotFoundError{Resource: "data bag", Name: bag}
	}
	out := map[string]string{}
	for item := range items {
		out[item] = "https://chef.example.com/data/" + bag + "/" + item
	}
	return out, nil
}

func (f *FakeClient) GetNode(name string) (Object, error) {
	return lookup("node", name, f.Nodes)
}

func (f *FakeClient) GetRole(name string) (Object, error) {
	return lookup("role", name, f.Roles)
}

func (f *FakeClient) GetEnvironment(name string) (Object, error) {
	return lookup("environment", name, f.Environments)
}

func (f *FakeClient) GetDataBagItem(bag, item string) (Object, error) {
	items, ok := f.DataBags[bag]
	if !ok {
		return nil, &NotFoundError{Resource: "data bag", Name: bag}
	}
	return lookup("data bag item", item, items)
}

func index(kind string, objs map[string]Object) map[string]string {
	out := make(map[string]string, len(objs))
	for name := range objs {
		out[name] = "https://chef.example.com/" + kind + "/" + name
	}
	return out
}

func lookup(resource, name string, objs map[string]Object) (Object, error) {
	o, ok := objs[name]
	if !ok {
		return nil, &NotFoundError{Resource: resource, Name: name}
	}
	return o, nil
}

func named(name string, doc Object) Object {
	if doc == nil {
		doc = Object{}
	}
	doc["name"] = name
	return doc
}
