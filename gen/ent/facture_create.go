// Code generated by ent, DO NOT EDIT.

package ent

import (
	"btp-catalogue/gen/ent/facture"
	"btp-catalogue/gen/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FactureCreate is the builder for creating a Facture entity.
type FactureCreate struct {
	config
	mutation *FactureMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *FactureCreate) SetUserID(v int) *FactureCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFournisseur sets the "fournisseur" field.
func (_c *FactureCreate) SetFournisseur(v string) *FactureCreate {
	_c.mutation.SetFournisseur(v)
	return _c
}

// SetNillableFournisseur sets the "fournisseur" field if the given value is not nil.
func (_c *FactureCreate) SetNillableFournisseur(v *string) *FactureCreate {
	if v != nil {
		_c.SetFournisseur(*v)
	}
	return _c
}

// SetNumeroFacture sets the "numero_facture" field.
func (_c *FactureCreate) SetNumeroFacture(v string) *FactureCreate {
	_c.mutation.SetNumeroFacture(v)
	return _c
}

// SetNillableNumeroFacture sets the "numero_facture" field if the given value is not nil.
func (_c *FactureCreate) SetNillableNumeroFacture(v *string) *FactureCreate {
	if v != nil {
		_c.SetNumeroFacture(*v)
	}
	return _c
}

// SetDateFacture sets the "date_facture" field.
func (_c *FactureCreate) SetDateFacture(v time.Time) *FactureCreate {
	_c.mutation.SetDateFacture(v)
	return _c
}

// SetNillableDateFacture sets the "date_facture" field if the given value is not nil.
func (_c *FactureCreate) SetNillableDateFacture(v *time.Time) *FactureCreate {
	if v != nil {
		_c.SetDateFacture(*v)
	}
	return _c
}

// SetNbProduits sets the "nb_produits" field.
func (_c *FactureCreate) SetNbProduits(v int) *FactureCreate {
	_c.mutation.SetNbProduits(v)
	return _c
}

// SetNillableNbProduits sets the "nb_produits" field if the given value is not nil.
func (_c *FactureCreate) SetNillableNbProduits(v *int) *FactureCreate {
	if v != nil {
		_c.SetNbProduits(*v)
	}
	return _c
}

// SetFichier sets the "fichier" field.
func (_c *FactureCreate) SetFichier(v string) *FactureCreate {
	_c.mutation.SetFichier(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *FactureCreate) SetMimeType(v string) *FactureCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *FactureCreate) SetNillableMimeType(v *string) *FactureCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *FactureCreate) SetSource(v string) *FactureCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *FactureCreate) SetNillableSource(v *string) *FactureCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatut sets the "statut" field.
func (_c *FactureCreate) SetStatut(v string) *FactureCreate {
	_c.mutation.SetStatut(v)
	return _c
}

// SetErreur sets the "erreur" field.
func (_c *FactureCreate) SetErreur(v string) *FactureCreate {
	_c.mutation.SetErreur(v)
	return _c
}

// SetNillableErreur sets the "erreur" field if the given value is not nil.
func (_c *FactureCreate) SetNillableErreur(v *string) *FactureCreate {
	if v != nil {
		_c.SetErreur(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *FactureCreate) SetModelName(v string) *FactureCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *FactureCreate) SetNillableModelName(v *string) *FactureCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetCoutUsd sets the "cout_usd" field.
func (_c *FactureCreate) SetCoutUsd(v float64) *FactureCreate {
	_c.mutation.SetCoutUsd(v)
	return _c
}

// SetNillableCoutUsd sets the "cout_usd" field if the given value is not nil.
func (_c *FactureCreate) SetNillableCoutUsd(v *float64) *FactureCreate {
	if v != nil {
		_c.SetCoutUsd(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *FactureCreate) SetPromptTokens(v int) *FactureCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *FactureCreate) SetNillablePromptTokens(v *int) *FactureCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *FactureCreate) SetOutputTokens(v int) *FactureCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *FactureCreate) SetNillableOutputTokens(v *int) *FactureCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLangue sets the "langue" field.
func (_c *FactureCreate) SetLangue(v string) *FactureCreate {
	_c.mutation.SetLangue(v)
	return _c
}

// SetNillableLangue sets the "langue" field if the given value is not nil.
func (_c *FactureCreate) SetNillableLangue(v *string) *FactureCreate {
	if v != nil {
		_c.SetLangue(*v)
	}
	return _c
}

// SetArchiveRef sets the "archive_ref" field.
func (_c *FactureCreate) SetArchiveRef(v string) *FactureCreate {
	_c.mutation.SetArchiveRef(v)
	return _c
}

// SetNillableArchiveRef sets the "archive_ref" field if the given value is not nil.
func (_c *FactureCreate) SetNillableArchiveRef(v *string) *FactureCreate {
	if v != nil {
		_c.SetArchiveRef(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FactureCreate) SetCreatedAt(v time.Time) *FactureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FactureCreate) SetNillableCreatedAt(v *time.Time) *FactureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FactureCreate) SetID(v uuid.UUID) *FactureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FactureCreate) SetNillableID(v *uuid.UUID) *FactureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *FactureCreate) SetUser(v *User) *FactureCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the FactureMutation object of the builder.
func (_c *FactureCreate) Mutation() *FactureMutation {
	return _c.mutation
}

// Save creates the Facture in the database.
func (_c *FactureCreate) Save(ctx context.Context) (*Facture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FactureCreate) SaveX(ctx context.Context) *Facture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FactureCreate) defaults() {
	if _, ok := _c.mutation.NbProduits(); !ok {
		v := facture.DefaultNbProduits
		_c.mutation.SetNbProduits(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := facture.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := facture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := facture.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FactureCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Facture.user_id"`)}
	}
	if _, ok := _c.mutation.NbProduits(); !ok {
		return &ValidationError{Name: "nb_produits", err: errors.New(`ent: missing required field "Facture.nb_produits"`)}
	}
	if _, ok := _c.mutation.Fichier(); !ok {
		return &ValidationError{Name: "fichier", err: errors.New(`ent: missing required field "Facture.fichier"`)}
	}
	if v, ok := _c.mutation.Fichier(); ok {
		if err := facture.FichierValidator(v); err != nil {
			return &ValidationError{Name: "fichier", err: fmt.Errorf(`ent: validator failed for field "Facture.fichier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Facture.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := facture.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Facture.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Statut(); !ok {
		return &ValidationError{Name: "statut", err: errors.New(`ent: missing required field "Facture.statut"`)}
	}
	if v, ok := _c.mutation.Statut(); ok {
		if err := facture.StatutValidator(v); err != nil {
			return &ValidationError{Name: "statut", err: fmt.Errorf(`ent: validator failed for field "Facture.statut": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Facture.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Facture.user"`)}
	}
	return nil
}

func (_c *FactureCreate) sqlSave(ctx context.Context) (*Facture, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FactureCreate) createSpec() (*Facture, *sqlgraph.CreateSpec) {
	var (
		_node = &Facture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facture.Table, sqlgraph.NewFieldSpec(facture.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Fournisseur(); ok {
		_spec.SetField(facture.FieldFournisseur, field.TypeString, value)
		_node.Fournisseur = &value
	}
	if value, ok := _c.mutation.NumeroFacture(); ok {
		_spec.SetField(facture.FieldNumeroFacture, field.TypeString, value)
		_node.NumeroFacture = &value
	}
	if value, ok := _c.mutation.DateFacture(); ok {
		_spec.SetField(facture.FieldDateFacture, field.TypeTime, value)
		_node.DateFacture = &value
	}
	if value, ok := _c.mutation.NbProduits(); ok {
		_spec.SetField(facture.FieldNbProduits, field.TypeInt, value)
		_node.NbProduits = value
	}
	if value, ok := _c.mutation.Fichier(); ok {
		_spec.SetField(facture.FieldFichier, field.TypeString, value)
		_node.Fichier = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(facture.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(facture.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Statut(); ok {
		_spec.SetField(facture.FieldStatut, field.TypeString, value)
		_node.Statut = value
	}
	if value, ok := _c.mutation.Erreur(); ok {
		_spec.SetField(facture.FieldErreur, field.TypeString, value)
		_node.Erreur = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(facture.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.CoutUsd(); ok {
		_spec.SetField(facture.FieldCoutUsd, field.TypeFloat64, value)
		_node.CoutUsd = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(facture.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(facture.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.Langue(); ok {
		_spec.SetField(facture.FieldLangue, field.TypeString, value)
		_node.Langue = &value
	}
	if value, ok := _c.mutation.ArchiveRef(); ok {
		_spec.SetField(facture.FieldArchiveRef, field.TypeString, value)
		_node.ArchiveRef = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(facture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facture.UserTable,
			Columns: []string{facture.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FactureCreateBulk is the builder for creating many Facture entities in bulk.
type FactureCreateBulk struct {
	config
	err      error
	builders []*FactureCreate
}

// Save creates the Facture entities in the database.
func (_c *FactureCreateBulk) Save(ctx context.Context) ([]*Facture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Facture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FactureMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FactureCreateBulk) SaveX(ctx context.Context) []*Facture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
