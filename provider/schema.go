package provider

// The *.clrmeta.json export schema. The exporter walks assemblies with
// reflection on the CLR side and writes this shape; the provider only
// decodes and normalizes, it never reflects.

type exportFile struct {
	FormatVersion string         `json:"formatVersion"`
	Assemblies    []assemblyJSON `json:"assemblies"`
}

type assemblyJSON struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	Types   []typeJSON `json:"types"`
}

type typeJSON struct {
	Namespace  string `json:"namespace"`
	FullName   string `json:"fullName"`
	Kind       string `json:"kind"`
	Visibility string `json:"visibility"`
	Abstract   bool   `json:"abstract,omitempty"`
	Sealed     bool   `json:"sealed,omitempty"`

	Base          *refJSON           `json:"base,omitempty"`
	Interfaces    []refJSON          `json:"interfaces,omitempty"`
	GenericParams []genericParamJSON `json:"genericParams,omitempty"`

	Methods    []methodJSON   `json:"methods,omitempty"`
	Properties []propertyJSON `json:"properties,omitempty"`
	Fields     []fieldJSON    `json:"fields,omitempty"`
	Events     []eventJSON    `json:"events,omitempty"`
	Ctors      []ctorJSON     `json:"ctors,omitempty"`

	Nested      []typeJSON       `json:"nested,omitempty"`
	EnumMembers []enumMemberJSON `json:"enumMembers,omitempty"`
}

type refJSON struct {
	Kind     string    `json:"kind"` // named, param, array, pointer, fnptr
	Assembly string    `json:"assembly,omitempty"`
	FullName string    `json:"fullName,omitempty"`
	TypeArgs []refJSON `json:"typeArgs,omitempty"`
	Param    string    `json:"param,omitempty"`
	Elem     *refJSON  `json:"elem,omitempty"`
	Rank     int       `json:"rank,omitempty"`
}

type genericParamJSON struct {
	Name        string    `json:"name"`
	Position    int       `json:"position"`
	Variance    string    `json:"variance,omitempty"` // "", "out", "in"
	IsClass     bool      `json:"isClass,omitempty"`
	IsStruct    bool      `json:"isStruct,omitempty"`
	HasNewCtor  bool      `json:"hasNewCtor,omitempty"`
	Constraints []refJSON `json:"constraints,omitempty"`
}

type paramJSON struct {
	Name     string  `json:"name"`
	Type     refJSON `json:"type"`
	Optional bool    `json:"optional,omitempty"`
	ByRef    bool    `json:"byRef,omitempty"`
}

type methodJSON struct {
	Name          string             `json:"name"`
	Visibility    string             `json:"visibility"`
	Static        bool               `json:"static,omitempty"`
	Params        []paramJSON        `json:"params,omitempty"`
	Returns       refJSON            `json:"returns"`
	GenericParams []genericParamJSON `json:"genericParams,omitempty"`
	Abstract      bool               `json:"abstract,omitempty"`
	Virtual       bool               `json:"virtual,omitempty"`
	Override      bool               `json:"override,omitempty"`
	Hides         bool               `json:"hides,omitempty"`
}

type propertyJSON struct {
	Name        string      `json:"name"`
	Visibility  string      `json:"visibility"`
	Static      bool        `json:"static,omitempty"`
	Type        refJSON     `json:"type"`
	IndexParams []paramJSON `json:"indexParams,omitempty"`
	HasGetter   bool        `json:"hasGetter,omitempty"`
	HasSetter   bool        `json:"hasSetter,omitempty"`
	Hides       bool        `json:"hides,omitempty"`
}

type fieldJSON struct {
	Name       string  `json:"name"`
	Visibility string  `json:"visibility"`
	Static     bool    `json:"static,omitempty"`
	Type       refJSON `json:"type"`
	Const      bool    `json:"const,omitempty"`
	ReadOnly   bool    `json:"readOnly,omitempty"`
	ConstValue string  `json:"constValue,omitempty"`
}

type eventJSON struct {
	Name        string  `json:"name"`
	Visibility  string  `json:"visibility"`
	Static      bool    `json:"static,omitempty"`
	HandlerType refJSON `json:"handlerType"`
}

type ctorJSON struct {
	Visibility string      `json:"visibility"`
	Params     []paramJSON `json:"params,omitempty"`
}

type enumMemberJSON struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
