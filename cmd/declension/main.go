// Command declension inflects words, names and phrases from the command
// line.
//
//	declension inflect --lang ru --case genitive Иван Иванович Петров
//	declension text --lang kz --case barys --every-word дос бала
//	declension html page.html --selector '#name' --target '#out' --lang ru --case dative
//	declension cases --lang kz
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
