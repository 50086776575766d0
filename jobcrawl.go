// Package jobcrawl provides single-page web content extraction with a
// specialized mode for job postings. It fetches a URL with bounded time and
// size, extracts the main readable text and page metadata, and can derive
// structured job-posting fields (company, location, salary, requirements,
// benefits) from the extracted content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, trafilatura/).
package jobcrawl
