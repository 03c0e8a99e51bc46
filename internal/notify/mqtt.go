package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/reminder"
)

// alertTopic is the per-user topic companion devices subscribe to.
func alertTopic(userID int) string {
	return fmt.Sprintf("noor/users/%d/alerts", userID)
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// Broker publishes prayer alerts over MQTT. It satisfies
// reminder.Publisher.
type Broker struct {
	client mqtt.Client
}

var _ reminder.Publisher = (*Broker)(nil)

// Connect dials the broker and returns a publisher bound to it.
func Connect(brokerURL, clientID string) (*Broker, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	log.Info().Str("broker", brokerURL).Msg("MQTT client initialized")
	return &Broker{client: client}, nil
}

// Publish sends one alert to the user's topic at QoS 1.
func (b *Broker) Publish(alert reminder.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	token := b.client.Publish(alertTopic(alert.UserID), 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish alert for user %d: %w", alert.UserID, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (b *Broker) Close() {
	b.client.Disconnect(250)
	log.Info().Msg("MQTT client disconnected")
}

// NopPublisher is used when no broker is configured: alerts are logged
// and dropped, mirroring a platform without notification capability.
type NopPublisher struct{}

var _ reminder.Publisher = NopPublisher{}

func (NopPublisher) Publish(alert reminder.Alert) error {
	log.Info().Int("user", alert.UserID).Str("prayer", string(alert.Prayer)).
		Msg("no MQTT broker configured, dropping alert")
	return nil
}
