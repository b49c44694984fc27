// Package netmon reports interface-level network reachability.
//
// The monitor answers a single synchronous question: does the host
// currently have a usable, non-loopback network interface? It never probes
// the network, so an online answer means "the host believes it is
// connected", not "the remote service is reachable". Edge detection over
// successive samples is the sync engine's job.
package netmon

import "net"

//go:generate mockgen -source=netmon.go -destination=../mock/netmon_mock.go -package=mock

// Monitor is a synchronous query of the host's reachability signal.
type Monitor interface {
	// Online reports whether the host currently appears to be connected.
	Online() bool
}

type interfaceMonitor struct{}

// NewInterfaceMonitor returns a Monitor backed by the host's interface
// table. It reports online when at least one non-loopback interface is up
// and has an assigned address.
func NewInterfaceMonitor() Monitor {
	return &interfaceMonitor{}
}

func (m *interfaceMonitor) Online() bool {
	interfaces, err := net.Interfaces()
	if err != nil {
		// cannot inspect interfaces; assume online so the engine still
		// attempts a push and lets the transport decide
		return true
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}

	return false
}
