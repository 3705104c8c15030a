package db

import (
	"github.com/gocql/gocql"
	"go.uber.org/atomic"
)

// NewHostSelectionPolicy routes queries to localDc, or when it is empty to the data center of the first host
// discovered by the driver.
func NewHostSelectionPolicy(localDc string) gocql.HostSelectionPolicy {
	if localDc != "" {
		return gocql.TokenAwareHostPolicy(gocql.DCAwareRoundRobinPolicy(localDc), gocql.ShuffleReplicas())
	}
	return gocql.TokenAwareHostPolicy(newDcInferringPolicy(), gocql.ShuffleReplicas())
}

type dcInferringPolicy struct {
	child      atomic.Value
	localDcSet atomic.Bool
}

type childPolicy struct {
	policy gocql.HostSelectionPolicy
}

func newDcInferringPolicy() *dcInferringPolicy {
	p := &dcInferringPolicy{}
	p.child.Store(childPolicy{gocql.RoundRobinHostPolicy()})
	return p
}

func (p *dcInferringPolicy) current() gocql.HostSelectionPolicy {
	return p.child.Load().(childPolicy).policy
}

func (p *dcInferringPolicy) AddHost(host *gocql.HostInfo) {
	if p.localDcSet.CAS(false, true) {
		policy := gocql.DCAwareRoundRobinPolicy(host.DataCenter())
		p.child.Store(childPolicy{policy})
		policy.AddHost(host)
		return
	}
	p.current().AddHost(host)
}

func (p *dcInferringPolicy) RemoveHost(host *gocql.HostInfo) { p.current().RemoveHost(host) }
func (p *dcInferringPolicy) HostUp(host *gocql.HostInfo)     { p.current().HostUp(host) }
func (p *dcInferringPolicy) HostDown(host *gocql.HostInfo)   { p.current().HostDown(host) }

func (p *dcInferringPolicy) SetPartitioner(partitioner string) {
	p.current().SetPartitioner(partitioner)
}

func (p *dcInferringPolicy) KeyspaceChanged(e gocql.KeyspaceUpdateEvent) {
	p.current().KeyspaceChanged(e)
}

// Init is not called by the token aware parent on its fallback policy.
func (p *dcInferringPolicy) Init(*gocql.Session) {}

func (p *dcInferringPolicy) IsLocal(host *gocql.HostInfo) bool {
	return p.current().IsLocal(host)
}

func (p *dcInferringPolicy) Pick(query gocql.ExecutableQuery) gocql.NextHost {
	return p.current().Pick(query)
}
