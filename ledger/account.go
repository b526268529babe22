package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// AccountID identifies an account on the ledger in <shard>.<realm>.<num>
// form. Nodes are addressed by the account they operate under, so the same
// type doubles as a node identifier.
type AccountID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseAccountID parses an account ID from its "0.0.3" textual form.
func ParseAccountID(s string) (AccountID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return AccountID{}, fmt.Errorf("invalid account ID %q: expected <shard>.<realm>.<num>", s)
	}

	nums := make([]uint64, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return AccountID{}, fmt.Errorf("invalid account ID %q: %w", s, err)
		}
		nums[i] = n
	}

	return AccountID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

func (id AccountID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}
