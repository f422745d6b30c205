package export

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/menulytics/menulytics/internal/models"
)

// KafkaDestination publishes every row to its topic through a
// synchronous producer so export errors surface immediately.
type KafkaDestination struct {
	producer sarama.SyncProducer
}

func NewKafkaDestination(cfg *models.Config) (*KafkaDestination, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer connected to brokers %v", brokerList)
	return &KafkaDestination{producer: producer}, nil
}

func (k *KafkaDestination) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (k *KafkaDestination) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
