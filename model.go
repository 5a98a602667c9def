package arrow

type (
	// Model is implemented by types that populate themselves from a Value,
	// issuing one Parse call per field.
	Model interface {
		Populate(v Value)
	}

	// ModelPtr is a pointer to M implementing Model
	ModelPtr[M any] interface {
		*M
		Model
	}

	// Initializer is implemented by models whose empty state differs from the zero value
	Initializer interface {
		Init()
	}
)

// ParseModel sets dst to a new model populated from an object node
func ParseModel[M any, PM ModelPtr[M]](dst *M, v Value) {
	assign(dst, v, ParseOptionalModel[M, PM])
}

// ParseOptionalModel is the optional counterpart of ParseModel
func ParseOptionalModel[M any, PM ModelPtr[M]](dst **M, v Value) {
	assignOptional(dst, v, ModelRule[M, PM])
}

// ModelRule converts an object node into M; failures of nested fields do not fail the model.
// String, number, bool, array and null nodes are rejected, leaving the destination unchanged.
func ModelRule[M any, PM ModelPtr[M]](v Value) (M, bool) {
	var result M
	if v.Kind() != KindObject {
		return result, false
	}
	result = NewModel[M, PM]()
	PM(&result).Populate(v.Config().Value(v.data))
	return result, true
}

// NewModel returns empty model
func NewModel[M any, PM ModelPtr[M]]() M {
	var result M
	if initializer, ok := any(PM(&result)).(Initializer); ok {
		initializer.Init()
	}
	return result
}
