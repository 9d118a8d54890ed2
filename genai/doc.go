// Package genai extracts document outlines through a generative model.
//
// Where the core pipeline infers structure from typography, this package
// asks a chat completions endpoint to read the document itself. [Client]
// base64-inlines a PDF into the prompt, instructs the model to answer
// with outline JSON only, and decodes the reply into the same
// [outline.Outline] the pipeline produces, rejecting replies with
// malformed levels or pages.
//
// Configuration comes from [Config], usually via [ConfigFromEnv]:
//
//	client, err := genai.NewClient(genai.ConfigFromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := client.ProduceFile(ctx, "report.pdf")
//
// The [Producer] interface abstracts over the two extraction paths, so
// callers can swap one for the other or fall back between them.
package genai
