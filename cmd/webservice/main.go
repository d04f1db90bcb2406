package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/agroconecta/marketplace-service/config"
	"github.com/agroconecta/marketplace-service/internal/app"
	"github.com/agroconecta/marketplace-service/internal/infrastructure/database/mongodb"
	kafkamq "github.com/agroconecta/marketplace-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	var kafkaProducer *kafka.Conn
	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err = kafkamq.CreateKafkaProducer(conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer kafkaProducer.Close()
	}

	server := app.App{
		DB:            db,
		Config:        conf,
		KafkaProducer: kafkaProducer,
	}
	server.Start()
}
