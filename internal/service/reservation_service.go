package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/repository"
	"github.com/agroconecta/marketplace-service/pkg/errs"
)

type ReservationServiceImpl struct {
	repo             repository.ReservationRepository
	productRepo      repository.ProductRepository
	registrationRepo repository.RegistrationRepository
	kafkaProducer    *kafka.Conn
}

func CreateReservationService(repo repository.ReservationRepository, productRepo repository.ProductRepository, registrationRepo repository.RegistrationRepository, kafkaProducer *kafka.Conn) ReservationService {
	return &ReservationServiceImpl{repo: repo, productRepo: productRepo, registrationRepo: registrationRepo, kafkaProducer: kafkaProducer}
}

func (s *ReservationServiceImpl) AddReservation(ctx context.Context, data dto.ReservationRequest) (id dto.DocumentID, err error) {
	newID, err := s.repo.AddReservation(ctx, data)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "reservation_created", dto.DocumentID{ID: newID})

	return dto.DocumentID{ID: newID}, nil
}

func (s *ReservationServiceImpl) GetReservations(ctx context.Context) (data []domain.Reservation, err error) {
	return s.repo.GetReservations(ctx)
}

func (s *ReservationServiceImpl) GetReservationByID(ctx context.Context, id string) (reservation domain.Reservation, err error) {
	return s.repo.GetReservationByID(ctx, id)
}

func (s *ReservationServiceImpl) UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) (err error) {
	return s.repo.UpdateReservation(ctx, id, data)
}

func (s *ReservationServiceImpl) DeleteReservation(ctx context.Context, id string) (err error) {
	return s.repo.DeleteReservation(ctx, id)
}

// FilterReservations is the cross-collection filter join. The flat filter map
// is partitioned into product, user and reservation buckets; the product and
// user buckets each resolve to a document ID set against their own
// collection, and those sets constrain the final reservation query via the
// soft-reference fields. A non-empty bucket that resolves to zero documents
// short-circuits the whole chain before any further query runs: product
// check first, then user check, then the reservation query.
func (s *ReservationServiceImpl) FilterReservations(ctx context.Context, filters map[string]interface{}) (data []domain.Reservation, err error) {
	productFilters, userFilters, reservationFilters := partitionFilters(filters)

	var productIDs []string
	if len(productFilters) > 0 {
		productIDs, err = s.productRepo.FindProductIDs(ctx, productFilters)
		if err != nil {
			return nil, err
		}
		if len(productIDs) == 0 {
			return nil, errs.ErrNoReservationMatch
		}
	}

	var consumerIDs []string
	if len(userFilters) > 0 {
		consumerIDs, err = s.registrationRepo.FindRegistrationIDs(ctx, userFilters)
		if err != nil {
			return nil, err
		}
		if len(consumerIDs) == 0 {
			return nil, errs.ErrNoReservationMatch
		}
	}

	data, err = s.repo.FindReservations(ctx, reservationFilters, productIDs, consumerIDs)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errs.ErrNoReservationMatch
	}

	return data, nil
}

func (s *ReservationServiceImpl) AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (reservation domain.Reservation, err error) {
	reservation, err = s.repo.AttachEvaluation(ctx, id, data)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "reservation_evaluated", reservation)

	return reservation, nil
}

// publishEvent emits a domain event on a best-effort basis. Event delivery
// never fails the request; the store write already succeeded.
func (s *ReservationServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("dropping event after retries")
}
