/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
)

var topicCreateKind = registerKind(&TransactionKind{
	Name:          "TopicCreateTransaction",
	DataCase:      "consensusCreateTopic",
	Method:        hapi.ConsensusCreateTopic,
	Schema:        hapi.ConsensusCreateTopicTransactionBody,
	DefaultMaxFee: hbar.New(25),
})

var topicMessageSubmitKind = registerKind(&TransactionKind{
	Name:          "TopicMessageSubmitTransaction",
	DataCase:      "consensusSubmitMessage",
	Method:        hapi.ConsensusSubmitMessage,
	Schema:        hapi.ConsensusSubmitMessageTransactionBody,
	DefaultMaxFee: hbar.New(2),
	Required:      []string{"topicID", "message"},
})

// TopicCreateTransaction creates a consensus topic
type TopicCreateTransaction struct {
	*Transaction
}

// NewTopicCreateTransaction returns a topic create transaction with the
// default auto renew period
func NewTopicCreateTransaction() *TopicCreateTransaction {
	t := &TopicCreateTransaction{newTransaction(topicCreateKind)}
	t.data.Set("autoRenewPeriod", durationToRecord(DefaultAutoRenewPeriod))
	return t
}

// SetTopicMemo sets the memo of the topic
func (t *TopicCreateTransaction) SetTopicMemo(memo string) error {
	return t.set("memo", memo)
}

// GetTopicMemo returns the memo of the topic
func (t *TopicCreateTransaction) GetTopicMemo() string {
	return t.data.GetString("memo")
}

// SetAdminKey sets the key that may update or delete the topic
func (t *TopicCreateTransaction) SetAdminKey(key keys.Key) error {
	return t.set("adminKey", key.ToRecord())
}

// SetSubmitKey restricts submitting messages to holders of key
func (t *TopicCreateTransaction) SetSubmitKey(key keys.Key) error {
	return t.set("submitKey", key.ToRecord())
}

// GetSubmitKey returns the submit key of the topic
func (t *TopicCreateTransaction) GetSubmitKey() (keys.Key, error) {
	return keys.KeyFromRecord(t.data.Message("submitKey"))
}

// SetAutoRenewPeriod sets how often the topic is renewed
func (t *TopicCreateTransaction) SetAutoRenewPeriod(period time.Duration) error {
	return t.set("autoRenewPeriod", durationToRecord(period))
}

// GetAutoRenewPeriod returns the auto renew period
func (t *TopicCreateTransaction) GetAutoRenewPeriod() time.Duration {
	return durationFromRecord(t.data.Message("autoRenewPeriod"))
}

// SetAutoRenewAccountID sets the account paying for the renewal
func (t *TopicCreateTransaction) SetAutoRenewAccountID(id entity.AccountID) error {
	return t.setEntities("autoRenewAccount", id.ToRecord(), id)
}

// TopicMessageSubmitTransaction submits a message to a topic
type TopicMessageSubmitTransaction struct {
	*Transaction
}

// NewTopicMessageSubmitTransaction returns an empty submit transaction
func NewTopicMessageSubmitTransaction() *TopicMessageSubmitTransaction {
	return &TopicMessageSubmitTransaction{newTransaction(topicMessageSubmitKind)}
}

// SetTopicID sets the topic
func (t *TopicMessageSubmitTransaction) SetTopicID(id entity.TopicID) error {
	return t.setEntities("topicID", id.ToRecord(), id)
}

// GetTopicID returns the topic
func (t *TopicMessageSubmitTransaction) GetTopicID() entity.TopicID {
	return entity.TopicIDFromRecord(t.data.Message("topicID"))
}

// SetMessage sets the message
func (t *TopicMessageSubmitTransaction) SetMessage(message []byte) error {
	return t.set("message", message)
}

// GetMessage returns the message
func (t *TopicMessageSubmitTransaction) GetMessage() []byte {
	return t.data.GetBytes("message")
}
