package ledger

import (
	"context"
	"fmt"

	"github.com/vietddude/ledgerclient/internal/wire"
)

// AccountBalanceQuery asks a single node for an account's balance in the
// network's smallest denomination. Answered locally by the node, without
// network-wide consensus.
type AccountBalanceQuery struct {
	account AccountID
	node    *AccountID
}

// NewAccountBalanceQuery creates a balance query for the given account.
func NewAccountBalanceQuery(account AccountID) *AccountBalanceQuery {
	return &AccountBalanceQuery{account: account}
}

// SetNodeAccount pins the query to one node instead of rotating.
func (q *AccountBalanceQuery) SetNodeAccount(acc AccountID) *AccountBalanceQuery {
	q.node = &acc
	return q
}

// Execute runs the query against the client's network.
func (q *AccountBalanceQuery) Execute(ctx context.Context, c *Client) (uint64, error) {
	return Execute(ctx, c, q)
}

func (q *AccountBalanceQuery) MakeRequest() ([]byte, error) {
	return wire.AppendBalanceQuery(nil, wire.BalanceQuery{
		Account: wire.AccountID{Shard: q.account.Shard, Realm: q.account.Realm, Num: q.account.Num},
	}), nil
}

func (q *AccountBalanceQuery) MapResponse(resp []byte) (uint64, error) {
	r, err := wire.ParseBalanceResponse(resp)
	if err != nil {
		return 0, fmt.Errorf("failed to decode balance response: %w", err)
	}
	return r.Balance, nil
}

func (q *AccountBalanceQuery) MapResponseStatus(resp []byte) (Status, error) {
	r, err := wire.ParseBalanceResponse(resp)
	if err != nil {
		return 0, fmt.Errorf("failed to decode balance response: %w", err)
	}
	return Status(r.Status), nil
}

func (q *AccountBalanceQuery) MethodPath() string {
	return "/ledger.v1.LedgerService/GetAccountBalance"
}

func (q *AccountBalanceQuery) NodeAccount(p ChannelProvider) AccountID {
	if q.node != nil {
		return *q.node
	}
	return p.NextNode()
}

// TransactionID returns nil; a balance query has no associated transaction.
func (q *AccountBalanceQuery) TransactionID() *TransactionID {
	return nil
}
