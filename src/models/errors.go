package models

import "errors"

var InvalidReferenceContractErr = errors.New("reference contract is not listed on the futures exchange")
var NoComparableOptionsErr = errors.New("threshold values are too narrow to detect any comparable options")
var CandidateCountMismatchErr = errors.New("candidate set must contain exactly one call and one put")
