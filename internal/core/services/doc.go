// Package services implements the driving ports: the use cases of the
// annotation client.
//
// Services orchestrate driven ports (repositories, storage) and contain the
// data-shaping logic of the application - notably the record aggregation
// join in RecordService. They hold no mutable state of their own; all
// mutation happens in the injected storage collaborator.
package services
