// Code generated by ent, DO NOT EDIT.

package ent

import (
	"btp-catalogue/gen/ent/facture"
	"btp-catalogue/gen/ent/predicate"
	"btp-catalogue/gen/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FactureUpdate is the builder for updating Facture entities.
type FactureUpdate struct {
	config
	hooks    []Hook
	mutation *FactureMutation
}

// Where appends a list predicates to the FactureUpdate builder.
func (_u *FactureUpdate) Where(ps ...predicate.Facture) *FactureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FactureUpdate) SetUserID(v int) *FactureUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableUserID(v *int) *FactureUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFournisseur sets the "fournisseur" field.
func (_u *FactureUpdate) SetFournisseur(v string) *FactureUpdate {
	_u.mutation.SetFournisseur(v)
	return _u
}

// SetNillableFournisseur sets the "fournisseur" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableFournisseur(v *string) *FactureUpdate {
	if v != nil {
		_u.SetFournisseur(*v)
	}
	return _u
}

// ClearFournisseur clears the value of the "fournisseur" field.
func (_u *FactureUpdate) ClearFournisseur() *FactureUpdate {
	_u.mutation.ClearFournisseur()
	return _u
}

// SetNumeroFacture sets the "numero_facture" field.
func (_u *FactureUpdate) SetNumeroFacture(v string) *FactureUpdate {
	_u.mutation.SetNumeroFacture(v)
	return _u
}

// SetNillableNumeroFacture sets the "numero_facture" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableNumeroFacture(v *string) *FactureUpdate {
	if v != nil {
		_u.SetNumeroFacture(*v)
	}
	return _u
}

// ClearNumeroFacture clears the value of the "numero_facture" field.
func (_u *FactureUpdate) ClearNumeroFacture() *FactureUpdate {
	_u.mutation.ClearNumeroFacture()
	return _u
}

// SetDateFacture sets the "date_facture" field.
func (_u *FactureUpdate) SetDateFacture(v time.Time) *FactureUpdate {
	_u.mutation.SetDateFacture(v)
	return _u
}

// SetNillableDateFacture sets the "date_facture" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableDateFacture(v *time.Time) *FactureUpdate {
	if v != nil {
		_u.SetDateFacture(*v)
	}
	return _u
}

// ClearDateFacture clears the value of the "date_facture" field.
func (_u *FactureUpdate) ClearDateFacture() *FactureUpdate {
	_u.mutation.ClearDateFacture()
	return _u
}

// SetNbProduits sets the "nb_produits" field.
func (_u *FactureUpdate) SetNbProduits(v int) *FactureUpdate {
	_u.mutation.ResetNbProduits()
	_u.mutation.SetNbProduits(v)
	return _u
}

// SetNillableNbProduits sets the "nb_produits" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableNbProduits(v *int) *FactureUpdate {
	if v != nil {
		_u.SetNbProduits(*v)
	}
	return _u
}

// AddNbProduits adds value to the "nb_produits" field.
func (_u *FactureUpdate) AddNbProduits(v int) *FactureUpdate {
	_u.mutation.AddNbProduits(v)
	return _u
}

// SetFichier sets the "fichier" field.
func (_u *FactureUpdate) SetFichier(v string) *FactureUpdate {
	_u.mutation.SetFichier(v)
	return _u
}

// SetNillableFichier sets the "fichier" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableFichier(v *string) *FactureUpdate {
	if v != nil {
		_u.SetFichier(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *FactureUpdate) SetMimeType(v string) *FactureUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableMimeType(v *string) *FactureUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *FactureUpdate) ClearMimeType() *FactureUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSource sets the "source" field.
func (_u *FactureUpdate) SetSource(v string) *FactureUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableSource(v *string) *FactureUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatut sets the "statut" field.
func (_u *FactureUpdate) SetStatut(v string) *FactureUpdate {
	_u.mutation.SetStatut(v)
	return _u
}

// SetNillableStatut sets the "statut" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableStatut(v *string) *FactureUpdate {
	if v != nil {
		_u.SetStatut(*v)
	}
	return _u
}

// SetErreur sets the "erreur" field.
func (_u *FactureUpdate) SetErreur(v string) *FactureUpdate {
	_u.mutation.SetErreur(v)
	return _u
}

// SetNillableErreur sets the "erreur" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableErreur(v *string) *FactureUpdate {
	if v != nil {
		_u.SetErreur(*v)
	}
	return _u
}

// ClearErreur clears the value of the "erreur" field.
func (_u *FactureUpdate) ClearErreur() *FactureUpdate {
	_u.mutation.ClearErreur()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *FactureUpdate) SetModelName(v string) *FactureUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableModelName(v *string) *FactureUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *FactureUpdate) ClearModelName() *FactureUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetCoutUsd sets the "cout_usd" field.
func (_u *FactureUpdate) SetCoutUsd(v float64) *FactureUpdate {
	_u.mutation.ResetCoutUsd()
	_u.mutation.SetCoutUsd(v)
	return _u
}

// SetNillableCoutUsd sets the "cout_usd" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableCoutUsd(v *float64) *FactureUpdate {
	if v != nil {
		_u.SetCoutUsd(*v)
	}
	return _u
}

// AddCoutUsd adds value to the "cout_usd" field.
func (_u *FactureUpdate) AddCoutUsd(v float64) *FactureUpdate {
	_u.mutation.AddCoutUsd(v)
	return _u
}

// ClearCoutUsd clears the value of the "cout_usd" field.
func (_u *FactureUpdate) ClearCoutUsd() *FactureUpdate {
	_u.mutation.ClearCoutUsd()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *FactureUpdate) SetPromptTokens(v int) *FactureUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *FactureUpdate) SetNillablePromptTokens(v *int) *FactureUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *FactureUpdate) AddPromptTokens(v int) *FactureUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *FactureUpdate) ClearPromptTokens() *FactureUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *FactureUpdate) SetOutputTokens(v int) *FactureUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableOutputTokens(v *int) *FactureUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *FactureUpdate) AddOutputTokens(v int) *FactureUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *FactureUpdate) ClearOutputTokens() *FactureUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetLangue sets the "langue" field.
func (_u *FactureUpdate) SetLangue(v string) *FactureUpdate {
	_u.mutation.SetLangue(v)
	return _u
}

// SetNillableLangue sets the "langue" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableLangue(v *string) *FactureUpdate {
	if v != nil {
		_u.SetLangue(*v)
	}
	return _u
}

// ClearLangue clears the value of the "langue" field.
func (_u *FactureUpdate) ClearLangue() *FactureUpdate {
	_u.mutation.ClearLangue()
	return _u
}

// SetArchiveRef sets the "archive_ref" field.
func (_u *FactureUpdate) SetArchiveRef(v string) *FactureUpdate {
	_u.mutation.SetArchiveRef(v)
	return _u
}

// SetNillableArchiveRef sets the "archive_ref" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableArchiveRef(v *string) *FactureUpdate {
	if v != nil {
		_u.SetArchiveRef(*v)
	}
	return _u
}

// ClearArchiveRef clears the value of the "archive_ref" field.
func (_u *FactureUpdate) ClearArchiveRef() *FactureUpdate {
	_u.mutation.ClearArchiveRef()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FactureUpdate) SetCreatedAt(v time.Time) *FactureUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FactureUpdate) SetNillableCreatedAt(v *time.Time) *FactureUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FactureUpdate) SetUser(v *User) *FactureUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FactureMutation object of the builder.
func (_u *FactureUpdate) Mutation() *FactureMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FactureUpdate) ClearUser() *FactureUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FactureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FactureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactureUpdate) check() error {
	if v, ok := _u.mutation.Fichier(); ok {
		if err := facture.FichierValidator(v); err != nil {
			return &ValidationError{Name: "fichier", err: fmt.Errorf(`ent: validator failed for field "Facture.fichier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := facture.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Facture.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statut(); ok {
		if err := facture.StatutValidator(v); err != nil {
			return &ValidationError{Name: "statut", err: fmt.Errorf(`ent: validator failed for field "Facture.statut": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Facture.user"`)
	}
	return nil
}

func (_u *FactureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facture.Table, facture.Columns, sqlgraph.NewFieldSpec(facture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fournisseur(); ok {
		_spec.SetField(facture.FieldFournisseur, field.TypeString, value)
	}
	if _u.mutation.FournisseurCleared() {
		_spec.ClearField(facture.FieldFournisseur, field.TypeString)
	}
	if value, ok := _u.mutation.NumeroFacture(); ok {
		_spec.SetField(facture.FieldNumeroFacture, field.TypeString, value)
	}
	if _u.mutation.NumeroFactureCleared() {
		_spec.ClearField(facture.FieldNumeroFacture, field.TypeString)
	}
	if value, ok := _u.mutation.DateFacture(); ok {
		_spec.SetField(facture.FieldDateFacture, field.TypeTime, value)
	}
	if _u.mutation.DateFactureCleared() {
		_spec.ClearField(facture.FieldDateFacture, field.TypeTime)
	}
	if value, ok := _u.mutation.NbProduits(); ok {
		_spec.SetField(facture.FieldNbProduits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNbProduits(); ok {
		_spec.AddField(facture.FieldNbProduits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fichier(); ok {
		_spec.SetField(facture.FieldFichier, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(facture.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(facture.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(facture.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statut(); ok {
		_spec.SetField(facture.FieldStatut, field.TypeString, value)
	}
	if value, ok := _u.mutation.Erreur(); ok {
		_spec.SetField(facture.FieldErreur, field.TypeString, value)
	}
	if _u.mutation.ErreurCleared() {
		_spec.ClearField(facture.FieldErreur, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(facture.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(facture.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CoutUsd(); ok {
		_spec.SetField(facture.FieldCoutUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoutUsd(); ok {
		_spec.AddField(facture.FieldCoutUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CoutUsdCleared() {
		_spec.ClearField(facture.FieldCoutUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(facture.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(facture.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(facture.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(facture.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(facture.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(facture.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Langue(); ok {
		_spec.SetField(facture.FieldLangue, field.TypeString, value)
	}
	if _u.mutation.LangueCleared() {
		_spec.ClearField(facture.FieldLangue, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveRef(); ok {
		_spec.SetField(facture.FieldArchiveRef, field.TypeString, value)
	}
	if _u.mutation.ArchiveRefCleared() {
		_spec.ClearField(facture.FieldArchiveRef, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(facture.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FactureUpdateOne is the builder for updating a single Facture entity.
type FactureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FactureMutation
}

// SetUserID sets the "user_id" field.
func (_u *FactureUpdateOne) SetUserID(v int) *FactureUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableUserID(v *int) *FactureUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFournisseur sets the "fournisseur" field.
func (_u *FactureUpdateOne) SetFournisseur(v string) *FactureUpdateOne {
	_u.mutation.SetFournisseur(v)
	return _u
}

// SetNillableFournisseur sets the "fournisseur" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableFournisseur(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetFournisseur(*v)
	}
	return _u
}

// ClearFournisseur clears the value of the "fournisseur" field.
func (_u *FactureUpdateOne) ClearFournisseur() *FactureUpdateOne {
	_u.mutation.ClearFournisseur()
	return _u
}

// SetNumeroFacture sets the "numero_facture" field.
func (_u *FactureUpdateOne) SetNumeroFacture(v string) *FactureUpdateOne {
	_u.mutation.SetNumeroFacture(v)
	return _u
}

// SetNillableNumeroFacture sets the "numero_facture" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableNumeroFacture(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetNumeroFacture(*v)
	}
	return _u
}

// ClearNumeroFacture clears the value of the "numero_facture" field.
func (_u *FactureUpdateOne) ClearNumeroFacture() *FactureUpdateOne {
	_u.mutation.ClearNumeroFacture()
	return _u
}

// SetDateFacture sets the "date_facture" field.
func (_u *FactureUpdateOne) SetDateFacture(v time.Time) *FactureUpdateOne {
	_u.mutation.SetDateFacture(v)
	return _u
}

// SetNillableDateFacture sets the "date_facture" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableDateFacture(v *time.Time) *FactureUpdateOne {
	if v != nil {
		_u.SetDateFacture(*v)
	}
	return _u
}

// ClearDateFacture clears the value of the "date_facture" field.
func (_u *FactureUpdateOne) ClearDateFacture() *FactureUpdateOne {
	_u.mutation.ClearDateFacture()
	return _u
}

// SetNbProduits sets the "nb_produits" field.
func (_u *FactureUpdateOne) SetNbProduits(v int) *FactureUpdateOne {
	_u.mutation.ResetNbProduits()
	_u.mutation.SetNbProduits(v)
	return _u
}

// SetNillableNbProduits sets the "nb_produits" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableNbProduits(v *int) *FactureUpdateOne {
	if v != nil {
		_u.SetNbProduits(*v)
	}
	return _u
}

// AddNbProduits adds value to the "nb_produits" field.
func (_u *FactureUpdateOne) AddNbProduits(v int) *FactureUpdateOne {
	_u.mutation.AddNbProduits(v)
	return _u
}

// SetFichier sets the "fichier" field.
func (_u *FactureUpdateOne) SetFichier(v string) *FactureUpdateOne {
	_u.mutation.SetFichier(v)
	return _u
}

// SetNillableFichier sets the "fichier" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableFichier(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetFichier(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *FactureUpdateOne) SetMimeType(v string) *FactureUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableMimeType(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *FactureUpdateOne) ClearMimeType() *FactureUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSource sets the "source" field.
func (_u *FactureUpdateOne) SetSource(v string) *FactureUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableSource(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatut sets the "statut" field.
func (_u *FactureUpdateOne) SetStatut(v string) *FactureUpdateOne {
	_u.mutation.SetStatut(v)
	return _u
}

// SetNillableStatut sets the "statut" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableStatut(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetStatut(*v)
	}
	return _u
}

// SetErreur sets the "erreur" field.
func (_u *FactureUpdateOne) SetErreur(v string) *FactureUpdateOne {
	_u.mutation.SetErreur(v)
	return _u
}

// SetNillableErreur sets the "erreur" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableErreur(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetErreur(*v)
	}
	return _u
}

// ClearErreur clears the value of the "erreur" field.
func (_u *FactureUpdateOne) ClearErreur() *FactureUpdateOne {
	_u.mutation.ClearErreur()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *FactureUpdateOne) SetModelName(v string) *FactureUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableModelName(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *FactureUpdateOne) ClearModelName() *FactureUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetCoutUsd sets the "cout_usd" field.
func (_u *FactureUpdateOne) SetCoutUsd(v float64) *FactureUpdateOne {
	_u.mutation.ResetCoutUsd()
	_u.mutation.SetCoutUsd(v)
	return _u
}

// SetNillableCoutUsd sets the "cout_usd" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableCoutUsd(v *float64) *FactureUpdateOne {
	if v != nil {
		_u.SetCoutUsd(*v)
	}
	return _u
}

// AddCoutUsd adds value to the "cout_usd" field.
func (_u *FactureUpdateOne) AddCoutUsd(v float64) *FactureUpdateOne {
	_u.mutation.AddCoutUsd(v)
	return _u
}

// ClearCoutUsd clears the value of the "cout_usd" field.
func (_u *FactureUpdateOne) ClearCoutUsd() *FactureUpdateOne {
	_u.mutation.ClearCoutUsd()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *FactureUpdateOne) SetPromptTokens(v int) *FactureUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillablePromptTokens(v *int) *FactureUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *FactureUpdateOne) AddPromptTokens(v int) *FactureUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *FactureUpdateOne) ClearPromptTokens() *FactureUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *FactureUpdateOne) SetOutputTokens(v int) *FactureUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableOutputTokens(v *int) *FactureUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *FactureUpdateOne) AddOutputTokens(v int) *FactureUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *FactureUpdateOne) ClearOutputTokens() *FactureUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetLangue sets the "langue" field.
func (_u *FactureUpdateOne) SetLangue(v string) *FactureUpdateOne {
	_u.mutation.SetLangue(v)
	return _u
}

// SetNillableLangue sets the "langue" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableLangue(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetLangue(*v)
	}
	return _u
}

// ClearLangue clears the value of the "langue" field.
func (_u *FactureUpdateOne) ClearLangue() *FactureUpdateOne {
	_u.mutation.ClearLangue()
	return _u
}

// SetArchiveRef sets the "archive_ref" field.
func (_u *FactureUpdateOne) SetArchiveRef(v string) *FactureUpdateOne {
	_u.mutation.SetArchiveRef(v)
	return _u
}

// SetNillableArchiveRef sets the "archive_ref" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableArchiveRef(v *string) *FactureUpdateOne {
	if v != nil {
		_u.SetArchiveRef(*v)
	}
	return _u
}

// ClearArchiveRef clears the value of the "archive_ref" field.
func (_u *FactureUpdateOne) ClearArchiveRef() *FactureUpdateOne {
	_u.mutation.ClearArchiveRef()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FactureUpdateOne) SetCreatedAt(v time.Time) *FactureUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FactureUpdateOne) SetNillableCreatedAt(v *time.Time) *FactureUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FactureUpdateOne) SetUser(v *User) *FactureUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FactureMutation object of the builder.
func (_u *FactureUpdateOne) Mutation() *FactureMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FactureUpdateOne) ClearUser() *FactureUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the FactureUpdate builder.
func (_u *FactureUpdateOne) Where(ps ...predicate.Facture) *FactureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FactureUpdateOne) Select(field string, fields ...string) *FactureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Facture entity.
func (_u *FactureUpdateOne) Save(ctx context.Context) (*Facture, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactureUpdateOne) SaveX(ctx context.Context) *Facture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FactureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactureUpdateOne) check() error {
	if v, ok := _u.mutation.Fichier(); ok {
		if err := facture.FichierValidator(v); err != nil {
			return &ValidationError{Name: "fichier", err: fmt.Errorf(`ent: validator failed for field "Facture.fichier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := facture.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Facture.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statut(); ok {
		if err := facture.StatutValidator(v); err != nil {
			return &ValidationError{Name: "statut", err: fmt.Errorf(`ent: validator failed for field "Facture.statut": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Facture.user"`)
	}
	return nil
}

func (_u *FactureUpdateOne) sqlSave(ctx context.Context) (_node *Facture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facture.Table, facture.Columns, sqlgraph.NewFieldSpec(facture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Facture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facture.FieldID)
		for _, f := range fields {
			if !facture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facture.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fournisseur(); ok {
		_spec.SetField(facture.FieldFournisseur, field.TypeString, value)
	}
	if _u.mutation.FournisseurCleared() {
		_spec.ClearField(facture.FieldFournisseur, field.TypeString)
	}
	if value, ok := _u.mutation.NumeroFacture(); ok {
		_spec.SetField(facture.FieldNumeroFacture, field.TypeString, value)
	}
	if _u.mutation.NumeroFactureCleared() {
		_spec.ClearField(facture.FieldNumeroFacture, field.TypeString)
	}
	if value, ok := _u.mutation.DateFacture(); ok {
		_spec.SetField(facture.FieldDateFacture, field.TypeTime, value)
	}
	if _u.mutation.DateFactureCleared() {
		_spec.ClearField(facture.FieldDateFacture, field.TypeTime)
	}
	if value, ok := _u.mutation.NbProduits(); ok {
		_spec.SetField(facture.FieldNbProduits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNbProduits(); ok {
		_spec.AddField(facture.FieldNbProduits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fichier(); ok {
		_spec.SetField(facture.FieldFichier, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(facture.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(facture.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(facture.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statut(); ok {
		_spec.SetField(facture.FieldStatut, field.TypeString, value)
	}
	if value, ok := _u.mutation.Erreur(); ok {
		_spec.SetField(facture.FieldErreur, field.TypeString, value)
	}
	if _u.mutation.ErreurCleared() {
		_spec.ClearField(facture.FieldErreur, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(facture.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(facture.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CoutUsd(); ok {
		_spec.SetField(facture.FieldCoutUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoutUsd(); ok {
		_spec.AddField(facture.FieldCoutUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CoutUsdCleared() {
		_spec.ClearField(facture.FieldCoutUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(facture.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(facture.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(facture.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(facture.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(facture.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(facture.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Langue(); ok {
		_spec.SetField(facture.FieldLangue, field.TypeString, value)
	}
	if _u.mutation.LangueCleared() {
		_spec.ClearField(facture.FieldLangue, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveRef(); ok {
		_spec.SetField(facture.FieldArchiveRef, field.TypeString, value)
	}
	if _u.mutation.ArchiveRefCleared() {
		_spec.ClearField(facture.FieldArchiveRef, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(facture.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Facture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
