package ledger

import (
	"errors"
	"testing"
	"time"
)

func testNetwork(t *testing.T) *Network {
	t.Helper()
	n, err := NewNetwork(map[string]AccountID{
		"0.testnet.example.com:50211": {Num: 3},
		"1.testnet.example.com:50211": {Num: 4},
		"2.testnet.example.com:50211": {Num: 5},
	})
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}
	return n
}

func TestNetwork_RoundRobinRotation(t *testing.T) {
	n := testNetwork(t)

	want := []uint64{3, 4, 5, 3, 4, 5}
	for i, num := range want {
		if got := n.NextNode(); got.Num != num {
			t.Errorf("selection %d = %s, want 0.0.%d", i, got, num)
		}
	}
}

func TestNetwork_SkipsUnhealthyNodes(t *testing.T) {
	n := testNetwork(t)

	// Drive node 3 past the error-rate threshold.
	bad := AccountID{Num: 3}
	n.RecordFailure(bad, errors.New("connection refused"))
	n.RecordFailure(bad, errors.New("connection refused"))

	for i := 0; i < 4; i++ {
		if got := n.NextNode(); got == bad {
			t.Fatalf("rotation returned unhealthy node %s on selection %d", got, i)
		}
	}

	// A success clears the record and the node rejoins the rotation.
	n.RecordSuccess(bad, 10*time.Millisecond)
	seen := map[AccountID]bool{}
	for i := 0; i < 3; i++ {
		seen[n.NextNode()] = true
	}
	if !seen[bad] {
		t.Errorf("recovered node %s never rejoined the rotation", bad)
	}
}

func TestNetwork_AllUnhealthyStillRotates(t *testing.T) {
	n := testNetwork(t)

	for _, num := range []uint64{3, 4, 5} {
		acc := AccountID{Num: num}
		n.RecordFailure(acc, errors.New("down"))
		n.RecordFailure(acc, errors.New("down"))
	}

	// Rotation must still hand out nodes rather than spin.
	first := n.NextNode()
	second := n.NextNode()
	if first == second {
		t.Errorf("expected rotation to advance, got %s twice", first)
	}
}

func TestNewNetwork_Validation(t *testing.T) {
	if _, err := NewNetwork(nil); err == nil {
		t.Error("expected error for empty network")
	}

	_, err := NewNetwork(map[string]AccountID{
		"a.example.com:50211": {Num: 3},
		"b.example.com:50211": {Num: 3},
	})
	if err == nil {
		t.Error("expected error for duplicate node account")
	}
}

func TestSecureEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		expect   bool
	}{
		{"https://node.example.com", true},
		{"node.example.com:443", true},
		{"http://node.example.com:50211", false},
		{"node.example.com:50211", false},
	}

	for _, tt := range tests {
		if got := secureEndpoint(tt.endpoint); got != tt.expect {
			t.Errorf("secureEndpoint(%q) = %v, want %v", tt.endpoint, got, tt.expect)
		}
	}
}
