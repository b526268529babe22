package ledger

import (
	"context"
	"crypto/tls"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Channel is a single node's transport: send encoded request bytes to one
// remote method, get response bytes back.
type Channel interface {
	Invoke(ctx context.Context, method string, req []byte) ([]byte, error)
}

// ChannelProvider resolves target nodes and their channels for the
// executor, and hears about per-attempt outcomes so it can steer future
// selections.
type ChannelProvider interface {
	// NextNode returns the node the next attempt should target. Selection
	// may rotate across attempts to allow failover.
	NextNode() AccountID

	// ChannelFor returns the transport channel for a node.
	ChannelFor(ctx context.Context, node AccountID) (Channel, error)

	// RecordSuccess tracks a completed attempt against a node
	RecordSuccess(node AccountID, latency time.Duration)

	// RecordFailure tracks a transport failure against a node
	RecordFailure(node AccountID, err error)
}

type nodeHealth struct {
	successCount int
	failureCount int
	totalLatency time.Duration
	available    bool
}

type node struct {
	account AccountID
	address string

	mu     sync.Mutex
	conn   *grpc.ClientConn
	health nodeHealth
}

// Network is the production ChannelProvider: a table of nodes with lazily
// dialed shared gRPC channels, round-robin selection, and per-node health
// tracking.
type Network struct {
	mu    sync.RWMutex
	nodes map[AccountID]*node
	order []AccountID
	next  int
}

// NewNetwork builds a network from a map of node address to the account
// the node operates under.
func NewNetwork(nodes map[string]AccountID) (*Network, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("network requires at least one node")
	}

	n := &Network{
		nodes: make(map[AccountID]*node, len(nodes)),
	}
	for addr, acc := range nodes {
		if _, dup := n.nodes[acc]; dup {
			return nil, fmt.Errorf("duplicate node account %s", acc)
		}
		n.nodes[acc] = &node{
			account: acc,
			address: addr,
			health:  nodeHealth{available: true},
		}
		n.order = append(n.order, acc)
	}

	// Deterministic rotation order regardless of map iteration.
	sort.Slice(n.order, func(i, j int) bool {
		a, b := n.order[i], n.order[j]
		if a.Shard != b.Shard {
			return a.Shard < b.Shard
		}
		if a.Realm != b.Realm {
			return a.Realm < b.Realm
		}
		return a.Num < b.Num
	})

	return n, nil
}

// NextNode rotates round-robin over the node table, preferring healthy
// nodes. When every node looks unhealthy the rotation proceeds anyway so a
// recovered node gets a chance to clear its record.
func (n *Network) NextNode() AccountID {
	n.mu.Lock()
	defer n.mu.Unlock()

	for range n.order {
		acc := n.order[n.next]
		n.next = (n.next + 1) % len(n.order)

		nd := n.nodes[acc]
		nd.mu.Lock()
		ok := nd.health.available
		nd.mu.Unlock()
		if ok {
			return acc
		}
	}

	acc := n.order[n.next]
	n.next = (n.next + 1) % len(n.order)
	return acc
}

// ChannelFor returns the shared channel for a node, creating it on first
// use. Channel creation never waits for connectivity; see dialNode.
func (n *Network) ChannelFor(_ context.Context, acc AccountID) (Channel, error) {
	n.mu.RLock()
	nd, ok := n.nodes[acc]
	n.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown node account %s", acc)
	}

	nd.mu.Lock()
	defer nd.mu.Unlock()

	if nd.conn == nil {
		conn, err := dialNode(nd.address)
		if err != nil {
			return nil, err
		}
		nd.conn = conn
	}

	return &grpcChannel{conn: nd.conn}, nil
}

// RecordSuccess tracks a completed attempt against a node.
func (n *Network) RecordSuccess(acc AccountID, latency time.Duration) {
	n.mu.RLock()
	nd, ok := n.nodes[acc]
	n.mu.RUnlock()
	if !ok {
		return
	}

	nd.mu.Lock()
	defer nd.mu.Unlock()
	nd.health.successCount++
	nd.health.totalLatency += latency
	nd.health.available = true
}

// RecordFailure tracks a transport failure against a node. A node whose
// error rate crosses 50% is skipped by rotation until it succeeds again.
func (n *Network) RecordFailure(acc AccountID, err error) {
	n.mu.RLock()
	nd, ok := n.nodes[acc]
	n.mu.RUnlock()
	if !ok {
		return
	}

	nd.mu.Lock()
	defer nd.mu.Unlock()
	nd.health.failureCount++

	total := nd.health.successCount + nd.health.failureCount
	if total > 0 && float64(nd.health.failureCount)/float64(total) > 0.5 {
		nd.health.available = false
	}
}

// Close tears down every dialed channel.
func (n *Network) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var firstErr error
	for _, nd := range n.nodes {
		nd.mu.Lock()
		if nd.conn != nil {
			if err := nd.conn.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
			nd.conn = nil
		}
		nd.mu.Unlock()
	}
	return firstErr
}

// dialNode creates the channel without waiting for a connection. Connecting
// lazily means a node that is down at first contact fails the Invoke with
// codes.Unavailable, which the executor retries like any other transient
// unreachability.
func dialNode(endpoint string) (*grpc.ClientConn, error) {
	target := endpoint
	var opts []grpc.DialOption

	if secureEndpoint(endpoint) {
		creds := credentials.NewTLS(&tls.Config{})
		opts = append(opts, grpc.WithTransportCredentials(creds))
		target = strings.TrimPrefix(target, "https://")
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		target = strings.TrimPrefix(target, "http://")
	}

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial node %s: %w", target, err)
	}
	return conn, nil
}

func secureEndpoint(endpoint string) bool {
	return strings.HasPrefix(endpoint, "https://") || strings.HasSuffix(endpoint, ":443")
}
