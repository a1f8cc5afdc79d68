// Package extractors groups the per-format content extractors. Each
// subpackage handles one attachment category: pdf for paginated
// documents, docx for word-processing documents, image for OCR.
package extractors
