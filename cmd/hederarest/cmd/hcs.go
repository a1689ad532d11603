package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hcs"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
)

// decodedMessage is a topic message with its payload decoded to text.
type decodedMessage struct {
	mirror.TopicMessage
	Text string `json:"text"`
}

func newHCSCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hcs",
		Short: "Consensus topics and messages",
	}

	var query hcs.MessagesQuery
	var order string
	var decode bool
	messages := &cobra.Command{
		Use:   "messages <topic-id>",
		Short: "List messages of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID, err := a.entityID(shared.EntityTopic, args[0])
			if err != nil {
				return err
			}
			query.Order = endpoint.Order(order)
			c, err := a.api()
			if err != nil {
				return err
			}
			page, err := c.HCS.ListMessages(cmd.Context(), topicID, query)
			if err != nil {
				return err
			}
			if !decode {
				return a.print(page)
			}

			decoded := make([]decodedMessage, 0, len(page.Messages))
			for _, message := range page.Messages {
				data, err := mirror.DecodeMessageData(message)
				if err != nil {
					return err
				}
				decoded = append(decoded, decodedMessage{TopicMessage: message, Text: string(data)})
			}
			return a.print(decoded)
		},
	}
	messages.Flags().StringVar(&query.SequenceNumber, "sequence-number", "", "sequence number filter, e.g. gt:10")
	messages.Flags().StringVar(&query.Timestamp, "timestamp", "", "timestamp filter")
	messages.Flags().BoolVar(&decode, "decode", false, "decode base64 payloads to text")
	addPageFlags(messages, &query.Limit, &order)

	var createRequest hcs.CreateTopicRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.HCS.CreateTopic(ctx, createRequest)
			})
		},
	}
	create.Flags().StringVar(&createRequest.Memo, "memo", "", "topic memo")
	create.Flags().StringVar(&createRequest.AdminKey, "admin-key", "", "DER hex admin key")
	create.Flags().StringVar(&createRequest.SubmitKey, "submit-key", "", "DER hex submit key")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "topic <topic-id>",
			Short: "Show a topic from the mirror API",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				topicID, err := a.entityID(shared.EntityTopic, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (hcs.Topic, error) {
					return c.HCS.GetTopic(ctx, topicID)
				})
			},
		},
		messages,
		&cobra.Command{
			Use:   "message <topic-id> <sequence-number>",
			Short: "Show one message of a topic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				topicID, err := a.entityID(shared.EntityTopic, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (mirror.TopicMessage, error) {
					return c.HCS.GetMessage(ctx, topicID, args[1])
				})
			},
		},
		create,
		&cobra.Command{
			Use:   "submit <topic-id> <message>",
			Short: "Submit a message to a topic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				topicID, err := a.entityID(shared.EntityTopic, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.HCS.SubmitMessage(ctx, topicID, hcs.SubmitMessageRequest{Message: args[1]})
				})
			},
		},
	)
	return cmd
}
