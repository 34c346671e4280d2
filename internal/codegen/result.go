package codegen

import "github.com/lumen-lang/lumen/internal/csharp"

// resultSupportClass builds the single Result carrier the emitted program
// depends on: an ok slot, an error slot, an IsError discriminant, and
// static Ok/Error constructors. It is emitted at most once per unit.
func resultSupportClass() *csharp.ClassDecl {
	resultType := "Result<TOk, TErr>"

	okCtor := &csharp.MethodDecl{
		Modifiers:  []string{"public", "static"},
		ReturnType: resultType,
		Name:       "Ok",
		Params:     []csharp.Param{{Type: "TOk", Name: "value"}},
		ExprBody: &csharp.ObjectInit{
			Type: resultType,
			Fields: []csharp.FieldInit{
				{Name: "Value", Value: &csharp.Ident{Name: "value"}},
				{Name: "IsError", Value: &csharp.Ident{Name: "false"}},
			},
		},
	}

	errCtor := &csharp.MethodDecl{
		Modifiers:  []string{"public", "static"},
		ReturnType: resultType,
		Name:       "Error",
		Params:     []csharp.Param{{Type: "TErr", Name: "error"}},
		ExprBody: &csharp.ObjectInit{
			Type: resultType,
			Fields: []csharp.FieldInit{
				{Name: "ErrorValue", Value: &csharp.Ident{Name: "error"}},
				{Name: "IsError", Value: &csharp.Ident{Name: "true"}},
			},
		},
	}

	return &csharp.ClassDecl{
		DocComments: []string{"Generated Result carrier for success-or-error values."},
		Modifiers:   []string{"public"},
		Name:        "Result",
		TypeParams:  []string{"TOk", "TErr"},
		Members: []csharp.Decl{
			&csharp.PropertyDecl{Modifiers: []string{"public"}, Type: "TOk", Name: "Value"},
			&csharp.PropertyDecl{Modifiers: []string{"public"}, Type: "TErr", Name: "ErrorValue"},
			&csharp.PropertyDecl{Modifiers: []string{"public"}, Type: "bool", Name: "IsError"},
			okCtor,
			errCtor,
		},
	}
}
