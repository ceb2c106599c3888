package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
)

// NewSchema builds the demo schema: a health query and the createUser
// mutation backed by users.
func NewSchema(users input.UserUseCase) (gql.Schema, error) {
	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"confirmed": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"email":     &gql.Field{Type: gql.NewNonNull(gql.String)},
			"initials":  &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})

	createUserInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "createUserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"email":            &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"initials":         &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password":         &gql.InputObjectFieldConfig{Type: gql.String},
			"clientMutationId": &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	createUserPayload := gql.NewObject(gql.ObjectConfig{
		Name: "createUserPayload",
		Fields: gql.Fields{
			"user":             &gql.Field{Type: userType},
			"clientMutationId": &gql.Field{Type: gql.String},
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"health": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(gql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createUser": &gql.Field{
				Type: createUserPayload,
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(createUserInput)},
				},
				Resolve: func(p gql.ResolveParams) (any, error) {
					args, _ := p.Args["input"].(map[string]any)
					payload, err := users.CreateUser(p.Context, entities.CreateUserInput{
						Email:            stringArg(args, "email"),
						Initials:         stringArg(args, "initials"),
						Password:         stringArg(args, "password"),
						ClientMutationID: optionalStringArg(args, "clientMutationId"),
					})
					if err != nil {
						return nil, err
					}
					return payloadToMap(payload), nil
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// optionalStringArg distinguishes an omitted or null argument (nil) from an
// empty string.
func optionalStringArg(args map[string]any, key string) *string {
	s, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func payloadToMap(p *entities.CreateUserPayload) map[string]any {
	var clientMutationID any
	if p.ClientMutationID != nil {
		clientMutationID = *p.ClientMutationID
	}
	return map[string]any{
		"user": map[string]any{
			"id":        p.User.ID,
			"confirmed": p.User.Confirmed,
			"email":     p.User.Email,
			"initials":  p.User.Initials,
		},
		"clientMutationId": clientMutationID,
	}
}
