// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FacturesColumns holds the columns for the "factures" table.
	FacturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fournisseur", Type: field.TypeString, Nullable: true},
		{Name: "numero_facture", Type: field.TypeString, Nullable: true},
		{Name: "date_facture", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "nb_produits", Type: field.TypeInt, Default: 0},
		{Name: "fichier", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "pc"},
		{Name: "statut", Type: field.TypeString},
		{Name: "erreur", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "cout_usd", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,6)"}},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "langue", Type: field.TypeString, Nullable: true},
		{Name: "archive_ref", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// FacturesTable holds the schema information for the "factures" table.
	FacturesTable = &schema.Table{
		Name:       "factures",
		Columns:    FacturesColumns,
		PrimaryKey: []*schema.Column{FacturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "factures_users_factures",
				Columns:    []*schema.Column{FacturesColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "facture_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FacturesColumns[17], FacturesColumns[16]},
			},
			{
				Name:    "facture_fournisseur",
				Unique:  false,
				Columns: []*schema.Column{FacturesColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "fichier", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_users_jobs",
				Columns:    []*schema.Column{JobsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7], JobsColumns[1], JobsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FacturesTable,
		JobsTable,
		UsersTable,
	}
)

func init() {
	FacturesTable.ForeignKeys[0].RefTable = UsersTable
	FacturesTable.Annotation = &entsql.Annotation{
		Table: "factures",
	}
	JobsTable.ForeignKeys[0].RefTable = UsersTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
