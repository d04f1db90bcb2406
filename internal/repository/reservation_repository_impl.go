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

const reservationCollection = "reservas"

type MongoDBReservationRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewReservationRepository(db *mongo.Database) ReservationRepository {
	return &MongoDBReservationRepositoryImpl{db: db}
}

func (r *MongoDBReservationRepositoryImpl) AddReservation(ctx context.Context, data dto.ReservationRequest) (id string, err error) {
	result, err := r.db.Collection(reservationCollection).InsertOne(ctx, reservationDocument(data))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReservation").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoDBReservationRepositoryImpl) GetReservations(ctx context.Context) (data []domain.Reservation, err error) {
	cursor, err := r.db.Collection(reservationCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReservations").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReservations").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReservationRepositoryImpl) GetReservationByID(ctx context.Context, id string) (reservation domain.Reservation, err error) {
	reservationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return reservation, errs.ErrReservationNotFound
	}

	filter := bson.D{{Key: "_id", Value: reservationID}}

	err = r.db.Collection(reservationCollection).FindOne(ctx, filter).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return reservation, errs.ErrReservationNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReservationByID").Msg("")
		return reservation, err
	}

	return reservation, nil
}

func (r *MongoDBReservationRepositoryImpl) UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) (err error) {
	reservationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrReservationNotFound
	}

	filter := bson.D{{Key: "_id", Value: reservationID}}

	doc := reservationDocument(data)
	if len(doc) == 0 {
		count, err := r.db.Collection(reservationCollection).CountDocuments(ctx, filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReservation").Msg("")
			return err
		}
		if count == 0 {
			return errs.ErrReservationNotFound
		}
		return nil
	}

	update := bson.D{{Key: "$set", Value: doc}}

	result, err := r.db.Collection(reservationCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReservation").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrReservationNotFound
	}

	return nil
}

func (r *MongoDBReservationRepositoryImpl) DeleteReservation(ctx context.Context, id string) (err error) {
	reservationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrReservationNotFound
	}

	filter := bson.D{{Key: "_id", Value: reservationID}}

	_, err = r.db.Collection(reservationCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReservation").Msg("")
		return
	}

	return nil
}

// FindReservations composes the equality predicates with the membership
// constraints produced by the cross-collection resolution. A nil ID slice
// means the corresponding constraint was never requested; a non-nil slice is
// chunked so no single query carries an oversized $in, and the per-chunk
// results are unioned with dedup on the document ID.
func (r *MongoDBReservationRepositoryImpl) FindReservations(ctx context.Context, filters map[string]interface{}, productIDs []string, consumerIDs []string) (data []domain.Reservation, err error) {
	base := filterDocument(filters)

	seen := make(map[string]struct{})
	for _, productChunk := range chunkIDs(productIDs) {
		for _, consumerChunk := range chunkIDs(consumerIDs) {
			filter := append(bson.D{}, base...)
			if productChunk != nil {
				filter = append(filter, bson.E{Key: "idProduto", Value: bson.M{"$in": productChunk}})
			}
			if consumerChunk != nil {
				filter = append(filter, bson.E{Key: "idConsumidor", Value: bson.M{"$in": consumerChunk}})
			}

			cursor, err := r.db.Collection(reservationCollection).Find(ctx, filter)
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "FindReservations").Msg("")
				return nil, err
			}

			var batch []domain.Reservation
			if err = cursor.All(ctx, &batch); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "FindReservations").Msg("")
				return nil, err
			}

			for _, reservation := range batch {
				key := reservation.ID.Hex()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				data = append(data, reservation)
			}
		}
	}

	return data, nil
}

func (r *MongoDBReservationRepositoryImpl) AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (reservation domain.Reservation, err error) {
	reservationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return reservation, errs.ErrReservationNotFound
	}

	doc := evaluationDocument(data)
	if len(doc) == 0 {
		return r.GetReservationByID(ctx, id)
	}

	filter := bson.D{{Key: "_id", Value: reservationID}}
	update := bson.D{{Key: "$set", Value: doc}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(reservationCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return reservation, errs.ErrReservationNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AttachEvaluation").Msg("")
		return reservation, err
	}

	return reservation, nil
}
