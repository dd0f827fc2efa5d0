// SPDX-License-Identifier: MIT

// Package batch runs many calculator and generator jobs from a YAML file.
//
// A job file looks like:
//
//	jobs:
//	  - name: shear
//	    kind: eigen
//	    matrix: |
//	      4 1
//	      2 3
//	  - name: rebuild
//	    kind: generate
//	    eigenvalues: "2, 3"
//	    eigenvectors: |
//	      1 0
//	      1 1
//
// Jobs run concurrently on a bounded worker pool; each job drives a fresh
// screen, so the outcome (text or alert) is exactly what the interactive
// screens would show. A failing job never stops the others. Results keep the
// input order.
package batch
