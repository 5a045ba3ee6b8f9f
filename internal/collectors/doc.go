// Package collectors provides implementations of the Collector interface
// for the supported incident report sources. Each collector knows how to
// fetch reports from a specific source (EuRepoC dataset files, CISA
// advisories, CSIS analyses).
package collectors
