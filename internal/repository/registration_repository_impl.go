package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/pkg/errs"
)

const registrationCollection = "cadastros"

type MongoDBRegistrationRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &MongoDBRegistrationRepositoryImpl{db: db}
}

func (r *MongoDBRegistrationRepositoryImpl) AddRegistration(ctx context.Context, data dto.RegistrationRequest) (id string, err error) {
	result, err := r.db.Collection(registrationCollection).InsertOne(ctx, registrationDocument(data))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddRegistration").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoDBRegistrationRepositoryImpl) GetRegistrations(ctx context.Context) (data []domain.Registration, err error) {
	cursor, err := r.db.Collection(registrationCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRegistrations").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRegistrations").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRegistrationRepositoryImpl) GetRegistrationByID(ctx context.Context, id string) (registration domain.Registration, err error) {
	registrationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return registration, errs.ErrRegistrationNotFound
	}

	filter := bson.D{{Key: "_id", Value: registrationID}}

	err = r.db.Collection(registrationCollection).FindOne(ctx, filter).Decode(&registration)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return registration, errs.ErrRegistrationNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRegistrationByID").Msg("")
		return registration, err
	}

	return registration, nil
}

func (r *MongoDBRegistrationRepositoryImpl) UpdateRegistration(ctx context.Context, id string, data dto.RegistrationRequest) (err error) {
	registrationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrRegistrationNotFound
	}

	filter := bson.D{{Key: "_id", Value: registrationID}}

	doc := registrationDocument(data)
	if len(doc) == 0 {
		// an all-absent payload is a no-op, but a missing id still surfaces
		count, err := r.db.Collection(registrationCollection).CountDocuments(ctx, filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateRegistration").Msg("")
			return err
		}
		if count == 0 {
			return errs.ErrRegistrationNotFound
		}
		return nil
	}

	update := bson.D{{Key: "$set", Value: doc}}

	result, err := r.db.Collection(registrationCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateRegistration").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrRegistrationNotFound
	}

	return nil
}

func (r *MongoDBRegistrationRepositoryImpl) DeleteRegistration(ctx context.Context, id string) (err error) {
	registrationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrRegistrationNotFound
	}

	filter := bson.D{{Key: "_id", Value: registrationID}}

	_, err = r.db.Collection(registrationCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteRegistration").Msg("")
		return
	}

	return nil
}

func (r *MongoDBRegistrationRepositoryImpl) FindRegistrationIDs(ctx context.Context, filters map[string]interface{}) (ids []string, err error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.db.Collection(registrationCollection).Find(ctx, filterDocument(filters), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindRegistrationIDs").Msg("")
		return
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindRegistrationIDs").Msg("")
		return
	}

	ids = make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID.Hex())
	}

	return ids, nil
}
