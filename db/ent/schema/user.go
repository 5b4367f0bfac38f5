package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"btp-catalogue/constants"
	"btp-catalogue/utils"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		// default auto-increment int id: produits and prix_historique
		// reference users.id from raw SQL, outside ent's reach
		field.String("email").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.String("display_name").Optional().Nillable(),
		field.String("role").Default(constants.RoleUser).
			Validate(utils.EnumValidator(constants.RoleUser, constants.RoleAdmin)),
		field.Time("created_at").Default(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("factures", Facture.Type),
		edge.To("jobs", Job.Type),
	}
}
