package usecase

import "log"

// SendOutcome é o resultado de um envio externo (email, discord). Falha em um
// canal nunca bloqueia os demais: cada workflow junta os outcomes e reporta
// tudo de uma vez no final.
type SendOutcome struct {
	Channel   string
	Recipient string
	Err       error
}

func (o SendOutcome) OK() bool {
	return o.Err == nil
}

func reportOutcomes(workflow string, outcomes []SendOutcome) {
	for _, o := range outcomes {
		if o.OK() {
			log.Printf("✅ [%s] %s enviado para %s", workflow, o.Channel, o.Recipient)
			continue
		}
		log.Printf("⚠️ [%s] envio %s para %s falhou: %v", workflow, o.Channel, o.Recipient, o.Err)
	}
}
