package query

type FaresSnapshot struct {
}
