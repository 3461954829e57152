package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var copySectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "site_copy_sections_total",
		Help: "Sections processed by copy generation, by outcome.",
	},
	[]string{"outcome"}, // updated, unknown_section_type, generation_failed, persist_failed
)
