// Package stats provides the numerically stable online accumulators that
// back BMU distortion statistics: a Welford (count, mean, M2) triple per
// vertex, a pairwise-combine for merging per-thread partials, and a
// longitudinal low-pass filter (OnlineMeanStd) that smooths the statistic
// across successive epochs.
package stats
