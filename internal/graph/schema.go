package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema for a resolver set.
//
// Object types are constructed in two passes: every type is registered with
// its scalar fields first, then the mutually recursive association fields
// (Product.Artisan, Artisan.Products) are attached once both ends exist.
// This keeps the schema free of order-of-definition coupling between the
// Product and Artisan types.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	types := newTypeRegistry(r)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(types),
		Mutation: r.mutationType(types),
	})
}

type typeRegistry struct {
	user        *graphql.Object
	authPayload *graphql.Object
	product     *graphql.Object
	artisan     *graphql.Object
}

func newTypeRegistry(r *Resolver) *typeRegistry {
	t := &typeRegistry{}

	// Pass one: register all type names with their own fields.
	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"username": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
		},
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
			"user":  &graphql.Field{Type: t.user},
		},
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"likes":       &graphql.Field{Type: graphql.Int},
			"createdAt":   &graphql.Field{Type: graphql.String, Resolve: resolveProductCreatedAt},
			"updatedAt":   &graphql.Field{Type: graphql.String, Resolve: resolveProductUpdatedAt},
			"artisan_id":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.artisan = graphql.NewObject(graphql.ObjectConfig{
		Name: "Artisan",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"bio":       &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: resolveArtisanCreatedAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: resolveArtisanUpdatedAt},
		},
	})

	// Pass two: attach the mutually recursive association fields.
	t.product.AddFieldConfig("Artisan", &graphql.Field{
		Type:    t.artisan,
		Resolve: r.resolveProductArtisan,
	})
	t.artisan.AddFieldConfig("Products", &graphql.Field{
		Type:    graphql.NewList(t.product),
		Resolve: r.resolveArtisanProducts,
	})

	return t
}

func idArgument() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func (r *Resolver) queryType(t *typeRegistry) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    t.user,
				Resolve: r.resolveMe,
			},
			"product": &graphql.Field{
				Type:    t.product,
				Args:    idArgument(),
				Resolve: r.resolveProduct,
			},
			"products": &graphql.Field{
				Type:    graphql.NewList(t.product),
				Resolve: r.resolveProducts,
			},
			"artisan": &graphql.Field{
				Type:    t.artisan,
				Args:    idArgument(),
				Resolve: r.resolveArtisan,
			},
			"artisans": &graphql.Field{
				Type:    graphql.NewList(t.artisan),
				Resolve: r.resolveArtisans,
			},
		},
	})
}

func (r *Resolver) mutationType(t *typeRegistry) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: t.authPayload,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type: t.authPayload,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
			"addArtisan": &graphql.Field{
				Type: t.artisan,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"bio":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveAddArtisan,
			},
			"addProduct": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"price":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"artisanId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveAddProduct,
			},
			"likeProduct": &graphql.Field{
				Type:    t.product,
				Args:    idArgument(),
				Resolve: r.resolveLikeProduct,
			},
		},
	})
}
