// Package infra contains technical adapters such as the weather and
// travel providers, metrics exporters and the MQTT announcer. These
// packages should depend only on the interfaces defined in the core
// packages.
package infra
