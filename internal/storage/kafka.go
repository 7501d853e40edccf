package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/EdM0807/sistema-meseros/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishPedido(ctx context.Context, event domain.PedidoEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.MesaID)),
		Value: payload,
	})
}
