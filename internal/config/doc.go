// Package config loads the YAML configuration of the placeholder CLI:
// formatting context, expansion depth limit and logging.
//
//	version: "1"
//	format:
//	  locale: de-DE
//	  currency: EUR
//	  date_layout: "02.01.2006"
//	  money_fields: [price, Invoice.total]
//	expand:
//	  max_depth: 32
//	log:
//	  level: info
//	  format: text
package config
