package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateCPF = errors.New("cpf already registered")
	ErrNotFound     = errors.New("farmer not found")
)

// Filtro opcional do listing: campo zero = não filtra.
type Filter struct {
	FullName string // substring, case-insensitive
	CPF      string // substring sobre os dígitos normalizados
	Active   *bool  // match exato
}

// Update parcial; ponteiros distinguem "omitido" de "informado".
// CPF é imutável e por isso não aparece aqui.
type ProfileUpdate struct {
	FullName  *string
	BirthDate *time.Time
	Phone     *string
	Active    *bool
}

type FarmerRepository struct {
	coll *mongo.Collection
}

func NewFarmerRepository(db *mongo.Database) *FarmerRepository {
	return &FarmerRepository{coll: db.Collection("farmers")}
}

func (r *FarmerRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "cpf", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_cpf"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Se já existir com outra opção, tenta dropar e recriar
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "uniq_cpf"); dropErr != nil {
			return fmt.Errorf("drop index uniq_cpf: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

func (r *FarmerRepository) Create(ctx context.Context, f *models.Farmer) (string, error) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	f.CreatedAt = time.Now().UTC()
	f.UpdatedAt = f.CreatedAt
	_, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		if isDuplicateKey(err) {
			return "", ErrDuplicateCPF
		}
		return "", err
	}
	return f.ID.Hex(), nil
}

func (r *FarmerRepository) GetByID(ctx context.Context, id string) (*models.Farmer, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	var f models.Farmer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// GetByCPF busca pelo CPF normalizado exato (match do índice único).
func (r *FarmerRepository) GetByCPF(ctx context.Context, cpf string) (*models.Farmer, error) {
	var f models.Farmer
	if err := r.coll.FindOne(ctx, bson.M{"cpf": cpf}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FarmerRepository) Find(ctx context.Context, filter Filter, limit, skip int64) ([]models.Farmer, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Farmer{}
	for cur.Next(ctx) {
		var f models.Farmer
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, cur.Err()
}

// Count conta TODOS os documentos que casam com o filtro, ignorando paginação.
func (r *FarmerRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	return r.coll.CountDocuments(ctx, filterQuery(filter))
}

func (r *FarmerRepository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.Farmer, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
	}
	if upd.BirthDate != nil {
		set["birth_date"] = *upd.BirthDate
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}

	return r.findOneAndSet(ctx, oid, set)
}

func (r *FarmerRepository) SetActive(ctx context.Context, id string, active bool) (*models.Farmer, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOneAndSet(ctx, oid, bson.M{
		"active":     active,
		"updated_at": time.Now().UTC(),
	})
}

func (r *FarmerRepository) Delete(ctx context.Context, id string) error {
	oid, err := toObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Aplica um $set e devolve o documento JÁ atualizado.
func (r *FarmerRepository) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*models.Farmer, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var f models.Farmer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if isDuplicateKey(err) {
			return nil, ErrDuplicateCPF
		}
		return nil, err
	}
	return &f, nil
}

func filterQuery(filter Filter) bson.M {
	q := bson.M{}
	if filter.FullName != "" {
		q["full_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.FullName), Options: "i"}
	}
	if filter.CPF != "" {
		q["cpf"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.CPF)}
	}
	if filter.Active != nil {
		q["active"] = *filter.Active
	}
	return q
}

// id malformado nunca casa com documento algum
func toObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}
