// Package skim provides extractive summarisation of article text.
// It splits a document into sentences, scores each sentence by the
// document-wide frequency of its non-stopword terms, and returns the most
// salient sentences, most informative first.
//
// This package contains domain types, interfaces and the pure summarisation
// core following Ben Johnson's Standard Package Layout. Implementations of
// external collaborators live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, gemini/).
package skim
