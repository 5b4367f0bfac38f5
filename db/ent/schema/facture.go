package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"btp-catalogue/constants"
	"btp-catalogue/utils"
)

type Facture struct{ ent.Schema }

func (Facture) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "factures"},
	}
}

func (Facture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Int("user_id"),
		field.String("fournisseur").Optional().Nillable(),
		field.String("numero_facture").Optional().Nillable(),
		field.Time("date_facture").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Int("nb_produits").Default(0),
		field.String("fichier").NotEmpty(),
		field.String("mime_type").Optional().Nillable(),
		field.String("source").Default(string(constants.SourcePC)).
			Validate(utils.EnumValidator(constants.SourcesAsStringSlice()...)),
		field.String("statut").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.FactureStatusProcessed),
				string(constants.FactureStatusError),
			)),
		field.String("erreur").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_name").Optional().Nillable(),
		field.Float("cout_usd").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,6)"}),
		field.Int("prompt_tokens").Optional().Nillable(),
		field.Int("output_tokens").Optional().Nillable(),
		field.String("langue").Optional().Nillable(),
		field.String("archive_ref").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Facture) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("factures").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Facture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("fournisseur"),
	}
}
