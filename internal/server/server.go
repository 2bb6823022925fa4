package server

// Server объединяет HTTP-серверы отдельных сущностей. Сейчас это только
// QuoteServer, но их может быть несколько.
type Server struct {
	QuoteServer
}

func NewServer(
	quoteServer QuoteServer,
) Server {
	return Server{
		QuoteServer: quoteServer,
	}
}
